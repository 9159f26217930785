// Code generated by ent, DO NOT EDIT.

package tutorattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bloomtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldLearnerID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldSubject, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldTopic, v))
}

// BloomLevel applies equality check predicate on the "bloom_level" field. It's identical to BloomLevelEQ.
func BloomLevel(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldBloomLevel, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldQuestion, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldCorrect, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldConfidence, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldFeedback, v))
}

// TimeSpentMs applies equality check predicate on the "time_spent_ms" field. It's identical to TimeSpentMsEQ.
func TimeSpentMs(v int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldTimeSpentMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContainsFold(FieldLearnerID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContainsFold(FieldSubject, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContainsFold(FieldTopic, v))
}

// BloomLevelEQ applies the EQ predicate on the "bloom_level" field.
func BloomLevelEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldBloomLevel, v))
}

// BloomLevelNEQ applies the NEQ predicate on the "bloom_level" field.
func BloomLevelNEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldBloomLevel, v))
}

// BloomLevelIn applies the In predicate on the "bloom_level" field.
func BloomLevelIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldBloomLevel, vs...))
}

// BloomLevelNotIn applies the NotIn predicate on the "bloom_level" field.
func BloomLevelNotIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldBloomLevel, vs...))
}

// BloomLevelGT applies the GT predicate on the "bloom_level" field.
func BloomLevelGT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldBloomLevel, v))
}

// BloomLevelGTE applies the GTE predicate on the "bloom_level" field.
func BloomLevelGTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldBloomLevel, v))
}

// BloomLevelLT applies the LT predicate on the "bloom_level" field.
func BloomLevelLT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldBloomLevel, v))
}

// BloomLevelLTE applies the LTE predicate on the "bloom_level" field.
func BloomLevelLTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldBloomLevel, v))
}

// BloomLevelContains applies the Contains predicate on the "bloom_level" field.
func BloomLevelContains(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContains(FieldBloomLevel, v))
}

// BloomLevelHasPrefix applies the HasPrefix predicate on the "bloom_level" field.
func BloomLevelHasPrefix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasPrefix(FieldBloomLevel, v))
}

// BloomLevelHasSuffix applies the HasSuffix predicate on the "bloom_level" field.
func BloomLevelHasSuffix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasSuffix(FieldBloomLevel, v))
}

// BloomLevelEqualFold applies the EqualFold predicate on the "bloom_level" field.
func BloomLevelEqualFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEqualFold(FieldBloomLevel, v))
}

// BloomLevelContainsFold applies the ContainsFold predicate on the "bloom_level" field.
func BloomLevelContainsFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContainsFold(FieldBloomLevel, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContainsFold(FieldQuestion, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContainsFold(FieldAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldCorrect, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldConfidence, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldContainsFold(FieldFeedback, v))
}

// TimeSpentMsEQ applies the EQ predicate on the "time_spent_ms" field.
func TimeSpentMsEQ(v int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsNEQ applies the NEQ predicate on the "time_spent_ms" field.
func TimeSpentMsNEQ(v int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsIn applies the In predicate on the "time_spent_ms" field.
func TimeSpentMsIn(vs ...int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsNotIn applies the NotIn predicate on the "time_spent_ms" field.
func TimeSpentMsNotIn(vs ...int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldNotIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsGT applies the GT predicate on the "time_spent_ms" field.
func TimeSpentMsGT(v int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGT(FieldTimeSpentMs, v))
}

// TimeSpentMsGTE applies the GTE predicate on the "time_spent_ms" field.
func TimeSpentMsGTE(v int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldGTE(FieldTimeSpentMs, v))
}

// TimeSpentMsLT applies the LT predicate on the "time_spent_ms" field.
func TimeSpentMsLT(v int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLT(FieldTimeSpentMs, v))
}

// TimeSpentMsLTE applies the LTE predicate on the "time_spent_ms" field.
func TimeSpentMsLTE(v int) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.FieldLTE(FieldTimeSpentMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorAttempt) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorAttempt) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorAttempt) predicate.TutorAttempt {
	return predicate.TutorAttempt(sql.NotPredicates(p))
}
