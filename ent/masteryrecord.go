// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bloomtutor/ent/masteryrecord"
)

// MasteryRecord is the model entity for the MasteryRecord schema.
type MasteryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// remember, understand, apply, analyze, evaluate, create
	BloomLevel string `json:"bloom_level,omitempty"`
	// Blended mastery score, 0-100
	Score float64 `json:"score,omitempty"`
	// Monotonic attempt counter
	Attempts int `json:"attempts,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// IncorrectCount holds the value of the "incorrect_count" field.
	IncorrectCount int `json:"incorrect_count,omitempty"`
	// LastPracticedAt holds the value of the "last_practiced_at" field.
	LastPracticedAt time.Time `json:"last_practiced_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldScore:
			values[i] = new(sql.NullFloat64)
		case masteryrecord.FieldID, masteryrecord.FieldAttempts, masteryrecord.FieldCorrectCount, masteryrecord.FieldIncorrectCount:
			values[i] = new(sql.NullInt64)
		case masteryrecord.FieldLearnerID, masteryrecord.FieldSubject, masteryrecord.FieldTopic, masteryrecord.FieldBloomLevel:
			values[i] = new(sql.NullString)
		case masteryrecord.FieldLastPracticedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryRecord fields.
func (_m *MasteryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masteryrecord.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case masteryrecord.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case masteryrecord.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case masteryrecord.FieldBloomLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bloom_level", values[i])
			} else if value.Valid {
				_m.BloomLevel = value.String
			}
		case masteryrecord.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case masteryrecord.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case masteryrecord.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case masteryrecord.FieldIncorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_count", values[i])
			} else if value.Valid {
				_m.IncorrectCount = int(value.Int64)
			}
		case masteryrecord.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryRecord.
// Note that you need to call MasteryRecord.Unwrap() before calling this method if this MasteryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryRecord) Update() *MasteryRecordUpdateOne {
	return NewMasteryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryRecord) Unwrap() *MasteryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("bloom_level=")
	builder.WriteString(_m.BloomLevel)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("incorrect_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncorrectCount))
	builder.WriteString(", ")
	builder.WriteString("last_practiced_at=")
	builder.WriteString(_m.LastPracticedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MasteryRecords is a parsable slice of MasteryRecord.
type MasteryRecords []*MasteryRecord
