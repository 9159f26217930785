// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bloomtutor/ent/learnerprofile"
	"github.com/abhisek/bloomtutor/ent/schema"
)

// LearnerProfile is the model entity for the LearnerProfile schema.
type LearnerProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Preferred tutoring mode: socratic, direct, mixed
	PreferredMode string `json:"preferred_mode,omitempty"`
	// Optional learning-style tag
	LearningStyle string `json:"learning_style,omitempty"`
	// Ring buffer of the last 50 tracked errors
	TrackedErrors []schema.TrackedError `json:"tracked_errors,omitempty"`
	// SessionCount holds the value of the "session_count" field.
	SessionCount int `json:"session_count,omitempty"`
	// TotalTimeMins holds the value of the "total_time_mins" field.
	TotalTimeMins int `json:"total_time_mins,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerprofile.FieldTrackedErrors:
			values[i] = new([]byte)
		case learnerprofile.FieldID, learnerprofile.FieldSessionCount, learnerprofile.FieldTotalTimeMins:
			values[i] = new(sql.NullInt64)
		case learnerprofile.FieldLearnerID, learnerprofile.FieldPreferredMode, learnerprofile.FieldLearningStyle:
			values[i] = new(sql.NullString)
		case learnerprofile.FieldCreatedAt, learnerprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerProfile fields.
func (_m *LearnerProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnerprofile.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case learnerprofile.FieldPreferredMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_mode", values[i])
			} else if value.Valid {
				_m.PreferredMode = value.String
			}
		case learnerprofile.FieldLearningStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_style", values[i])
			} else if value.Valid {
				_m.LearningStyle = value.String
			}
		case learnerprofile.FieldTrackedErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tracked_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TrackedErrors); err != nil {
					return fmt.Errorf("unmarshal field tracked_errors: %w", err)
				}
			}
		case learnerprofile.FieldSessionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_count", values[i])
			} else if value.Valid {
				_m.SessionCount = int(value.Int64)
			}
		case learnerprofile.FieldTotalTimeMins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_mins", values[i])
			} else if value.Valid {
				_m.TotalTimeMins = int(value.Int64)
			}
		case learnerprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learnerprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerProfile.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerProfile.
// Note that you need to call LearnerProfile.Unwrap() before calling this method if this LearnerProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerProfile) Update() *LearnerProfileUpdateOne {
	return NewLearnerProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerProfile) Unwrap() *LearnerProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerProfile) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("preferred_mode=")
	builder.WriteString(_m.PreferredMode)
	builder.WriteString(", ")
	builder.WriteString("learning_style=")
	builder.WriteString(_m.LearningStyle)
	builder.WriteString(", ")
	builder.WriteString("tracked_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrackedErrors))
	builder.WriteString(", ")
	builder.WriteString("session_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCount))
	builder.WriteString(", ")
	builder.WriteString("total_time_mins=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTimeMins))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerProfiles is a parsable slice of LearnerProfile.
type LearnerProfiles []*LearnerProfile
