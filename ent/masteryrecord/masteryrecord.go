// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryrecord type in the database.
	Label = "mastery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldBloomLevel holds the string denoting the bloom_level field in the database.
	FieldBloomLevel = "bloom_level"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldIncorrectCount holds the string denoting the incorrect_count field in the database.
	FieldIncorrectCount = "incorrect_count"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// Table holds the table name of the masteryrecord in the database.
	Table = "mastery_records"
)

// Columns holds all SQL columns for masteryrecord fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldSubject,
	FieldTopic,
	FieldBloomLevel,
	FieldScore,
	FieldAttempts,
	FieldCorrectCount,
	FieldIncorrectCount,
	FieldLastPracticedAt,
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
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// BloomLevelValidator is a validator for the "bloom_level" field. It is called by the builders before save.
	BloomLevelValidator func(string) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(float64) error
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultIncorrectCount holds the default value on creation for the "incorrect_count" field.
	DefaultIncorrectCount int
	// DefaultLastPracticedAt holds the default value on creation for the "last_practiced_at" field.
	DefaultLastPracticedAt func() time.Time
)

// OrderOption defines the ordering options for the MasteryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
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

// ByBloomLevel orders the results by the bloom_level field.
func ByBloomLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloomLevel, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByIncorrectCount orders the results by the incorrect_count field.
func ByIncorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectCount, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}
