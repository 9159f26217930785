// Code generated by ent, DO NOT EDIT.

package learnerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerprofile type in the database.
	Label = "learner_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldPreferredMode holds the string denoting the preferred_mode field in the database.
	FieldPreferredMode = "preferred_mode"
	// FieldLearningStyle holds the string denoting the learning_style field in the database.
	FieldLearningStyle = "learning_style"
	// FieldTrackedErrors holds the string denoting the tracked_errors field in the database.
	FieldTrackedErrors = "tracked_errors"
	// FieldSessionCount holds the string denoting the session_count field in the database.
	FieldSessionCount = "session_count"
	// FieldTotalTimeMins holds the string denoting the total_time_mins field in the database.
	FieldTotalTimeMins = "total_time_mins"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learnerprofile in the database.
	Table = "learner_profiles"
)

// Columns holds all SQL columns for learnerprofile fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldPreferredMode,
	FieldLearningStyle,
	FieldTrackedErrors,
	FieldSessionCount,
	FieldTotalTimeMins,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultPreferredMode holds the default value on creation for the "preferred_mode" field.
	DefaultPreferredMode string
	// DefaultLearningStyle holds the default value on creation for the "learning_style" field.
	DefaultLearningStyle string
	// DefaultSessionCount holds the default value on creation for the "session_count" field.
	DefaultSessionCount int
	// DefaultTotalTimeMins holds the default value on creation for the "total_time_mins" field.
	DefaultTotalTimeMins int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearnerProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByPreferredMode orders the results by the preferred_mode field.
func ByPreferredMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredMode, opts...).ToFunc()
}

// ByLearningStyle orders the results by the learning_style field.
func ByLearningStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningStyle, opts...).ToFunc()
}

// BySessionCount orders the results by the session_count field.
func BySessionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCount, opts...).ToFunc()
}

// ByTotalTimeMins orders the results by the total_time_mins field.
func ByTotalTimeMins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeMins, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
