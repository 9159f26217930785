// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bloomtutor/ent/lessonplan"
	"github.com/abhisek/bloomtutor/ent/schema"
)

// LessonPlan is the model entity for the LessonPlan schema.
type LessonPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// GradeLevel holds the value of the "grade_level" field.
	GradeLevel string `json:"grade_level,omitempty"`
	// 2-4 learning goals
	Goals []string `json:"goals,omitempty"`
	// Prior-knowledge check question
	PriorCheck string `json:"prior_check,omitempty"`
	// Ordered Bloom-progressing lesson steps
	Steps []schema.LessonStepData `json:"steps,omitempty"`
	// Resources holds the value of the "resources" field.
	Resources []string `json:"resources,omitempty"`
	// TotalMinutes holds the value of the "total_minutes" field.
	TotalMinutes int `json:"total_minutes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonplan.FieldGoals, lessonplan.FieldSteps, lessonplan.FieldResources:
			values[i] = new([]byte)
		case lessonplan.FieldID, lessonplan.FieldTotalMinutes:
			values[i] = new(sql.NullInt64)
		case lessonplan.FieldSessionID, lessonplan.FieldLearnerID, lessonplan.FieldSubject, lessonplan.FieldTopic, lessonplan.FieldGradeLevel, lessonplan.FieldPriorCheck:
			values[i] = new(sql.NullString)
		case lessonplan.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonPlan fields.
func (_m *LessonPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonplan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonplan.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case lessonplan.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case lessonplan.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case lessonplan.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case lessonplan.FieldGradeLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade_level", values[i])
			} else if value.Valid {
				_m.GradeLevel = value.String
			}
		case lessonplan.FieldGoals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field goals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Goals); err != nil {
					return fmt.Errorf("unmarshal field goals: %w", err)
				}
			}
		case lessonplan.FieldPriorCheck:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prior_check", values[i])
			} else if value.Valid {
				_m.PriorCheck = value.String
			}
		case lessonplan.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case lessonplan.FieldResources:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resources", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Resources); err != nil {
					return fmt.Errorf("unmarshal field resources: %w", err)
				}
			}
		case lessonplan.FieldTotalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_minutes", values[i])
			} else if value.Valid {
				_m.TotalMinutes = int(value.Int64)
			}
		case lessonplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonPlan.
// This includes values selected through modifiers, order, etc.
func (_m *LessonPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonPlan.
// Note that you need to call LessonPlan.Unwrap() before calling this method if this LessonPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonPlan) Update() *LessonPlanUpdateOne {
	return NewLessonPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonPlan) Unwrap() *LessonPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonPlan) String() string {
	var builder strings.Builder
	builder.WriteString("LessonPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("grade_level=")
	builder.WriteString(_m.GradeLevel)
	builder.WriteString(", ")
	builder.WriteString("goals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Goals))
	builder.WriteString(", ")
	builder.WriteString("prior_check=")
	builder.WriteString(_m.PriorCheck)
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("resources=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resources))
	builder.WriteString(", ")
	builder.WriteString("total_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMinutes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonPlans is a parsable slice of LessonPlan.
type LessonPlans []*LessonPlan
