// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bloomtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLearnerID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldSubject, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTopic, v))
}

// BloomLevel applies equality check predicate on the "bloom_level" field. It's identical to BloomLevelEQ.
func BloomLevel(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldBloomLevel, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldScore, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldAttempts, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldCorrectCount, v))
}

// IncorrectCount applies equality check predicate on the "incorrect_count" field. It's identical to IncorrectCountEQ.
func IncorrectCount(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldIncorrectCount, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldLearnerID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldSubject, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldTopic, v))
}

// BloomLevelEQ applies the EQ predicate on the "bloom_level" field.
func BloomLevelEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldBloomLevel, v))
}

// BloomLevelNEQ applies the NEQ predicate on the "bloom_level" field.
func BloomLevelNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldBloomLevel, v))
}

// BloomLevelIn applies the In predicate on the "bloom_level" field.
func BloomLevelIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldBloomLevel, vs...))
}

// BloomLevelNotIn applies the NotIn predicate on the "bloom_level" field.
func BloomLevelNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldBloomLevel, vs...))
}

// BloomLevelGT applies the GT predicate on the "bloom_level" field.
func BloomLevelGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldBloomLevel, v))
}

// BloomLevelGTE applies the GTE predicate on the "bloom_level" field.
func BloomLevelGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldBloomLevel, v))
}

// BloomLevelLT applies the LT predicate on the "bloom_level" field.
func BloomLevelLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldBloomLevel, v))
}

// BloomLevelLTE applies the LTE predicate on the "bloom_level" field.
func BloomLevelLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldBloomLevel, v))
}

// BloomLevelContains applies the Contains predicate on the "bloom_level" field.
func BloomLevelContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldBloomLevel, v))
}

// BloomLevelHasPrefix applies the HasPrefix predicate on the "bloom_level" field.
func BloomLevelHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldBloomLevel, v))
}

// BloomLevelHasSuffix applies the HasSuffix predicate on the "bloom_level" field.
func BloomLevelHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldBloomLevel, v))
}

// BloomLevelEqualFold applies the EqualFold predicate on the "bloom_level" field.
func BloomLevelEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldBloomLevel, v))
}

// BloomLevelContainsFold applies the ContainsFold predicate on the "bloom_level" field.
func BloomLevelContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldBloomLevel, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldScore, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldAttempts, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldCorrectCount, v))
}

// IncorrectCountEQ applies the EQ predicate on the "incorrect_count" field.
func IncorrectCountEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldIncorrectCount, v))
}

// IncorrectCountNEQ applies the NEQ predicate on the "incorrect_count" field.
func IncorrectCountNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldIncorrectCount, v))
}

// IncorrectCountIn applies the In predicate on the "incorrect_count" field.
func IncorrectCountIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldIncorrectCount, vs...))
}

// IncorrectCountNotIn applies the NotIn predicate on the "incorrect_count" field.
func IncorrectCountNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldIncorrectCount, vs...))
}

// IncorrectCountGT applies the GT predicate on the "incorrect_count" field.
func IncorrectCountGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldIncorrectCount, v))
}

// IncorrectCountGTE applies the GTE predicate on the "incorrect_count" field.
func IncorrectCountGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldIncorrectCount, v))
}

// IncorrectCountLT applies the LT predicate on the "incorrect_count" field.
func IncorrectCountLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldIncorrectCount, v))
}

// IncorrectCountLTE applies the LTE predicate on the "incorrect_count" field.
func IncorrectCountLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldIncorrectCount, v))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLastPracticedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.NotPredicates(p))
}
