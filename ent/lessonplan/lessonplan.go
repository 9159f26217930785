// Code generated by ent, DO NOT EDIT.

package lessonplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonplan type in the database.
	Label = "lesson_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldGradeLevel holds the string denoting the grade_level field in the database.
	FieldGradeLevel = "grade_level"
	// FieldGoals holds the string denoting the goals field in the database.
	FieldGoals = "goals"
	// FieldPriorCheck holds the string denoting the prior_check field in the database.
	FieldPriorCheck = "prior_check"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldResources holds the string denoting the resources field in the database.
	FieldResources = "resources"
	// FieldTotalMinutes holds the string denoting the total_minutes field in the database.
	FieldTotalMinutes = "total_minutes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the lessonplan in the database.
	Table = "lesson_plans"
)

// Columns holds all SQL columns for lessonplan fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldLearnerID,
	FieldSubject,
	FieldTopic,
	FieldGradeLevel,
	FieldGoals,
	FieldPriorCheck,
	FieldSteps,
	FieldResources,
	FieldTotalMinutes,
	FieldCreatedAt,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultGradeLevel holds the default value on creation for the "grade_level" field.
	DefaultGradeLevel string
	// DefaultPriorCheck holds the default value on creation for the "prior_check" field.
	DefaultPriorCheck string
	// DefaultTotalMinutes holds the default value on creation for the "total_minutes" field.
	DefaultTotalMinutes int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the LessonPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByGradeLevel orders the results by the grade_level field.
func ByGradeLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeLevel, opts...).ToFunc()
}

// ByPriorCheck orders the results by the prior_check field.
func ByPriorCheck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorCheck, opts...).ToFunc()
}

// ByTotalMinutes orders the results by the total_minutes field.
func ByTotalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMinutes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
