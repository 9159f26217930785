// Code generated by ent, DO NOT EDIT.

package lessonplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bloomtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldLearnerID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldSubject, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldTopic, v))
}

// GradeLevel applies equality check predicate on the "grade_level" field. It's identical to GradeLevelEQ.
func GradeLevel(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldGradeLevel, v))
}

// PriorCheck applies equality check predicate on the "prior_check" field. It's identical to PriorCheckEQ.
func PriorCheck(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldPriorCheck, v))
}

// TotalMinutes applies equality check predicate on the "total_minutes" field. It's identical to TotalMinutesEQ.
func TotalMinutes(v int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldTotalMinutes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContainsFold(FieldLearnerID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContainsFold(FieldSubject, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContainsFold(FieldTopic, v))
}

// GradeLevelEQ applies the EQ predicate on the "grade_level" field.
func GradeLevelEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldGradeLevel, v))
}

// GradeLevelNEQ applies the NEQ predicate on the "grade_level" field.
func GradeLevelNEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNEQ(FieldGradeLevel, v))
}

// GradeLevelIn applies the In predicate on the "grade_level" field.
func GradeLevelIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIn(FieldGradeLevel, vs...))
}

// GradeLevelNotIn applies the NotIn predicate on the "grade_level" field.
func GradeLevelNotIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotIn(FieldGradeLevel, vs...))
}

// GradeLevelGT applies the GT predicate on the "grade_level" field.
func GradeLevelGT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGT(FieldGradeLevel, v))
}

// GradeLevelGTE applies the GTE predicate on the "grade_level" field.
func GradeLevelGTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGTE(FieldGradeLevel, v))
}

// GradeLevelLT applies the LT predicate on the "grade_level" field.
func GradeLevelLT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLT(FieldGradeLevel, v))
}

// GradeLevelLTE applies the LTE predicate on the "grade_level" field.
func GradeLevelLTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLTE(FieldGradeLevel, v))
}

// GradeLevelContains applies the Contains predicate on the "grade_level" field.
func GradeLevelContains(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContains(FieldGradeLevel, v))
}

// GradeLevelHasPrefix applies the HasPrefix predicate on the "grade_level" field.
func GradeLevelHasPrefix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasPrefix(FieldGradeLevel, v))
}

// GradeLevelHasSuffix applies the HasSuffix predicate on the "grade_level" field.
func GradeLevelHasSuffix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasSuffix(FieldGradeLevel, v))
}

// GradeLevelEqualFold applies the EqualFold predicate on the "grade_level" field.
func GradeLevelEqualFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEqualFold(FieldGradeLevel, v))
}

// GradeLevelContainsFold applies the ContainsFold predicate on the "grade_level" field.
func GradeLevelContainsFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContainsFold(FieldGradeLevel, v))
}

// PriorCheckEQ applies the EQ predicate on the "prior_check" field.
func PriorCheckEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldPriorCheck, v))
}

// PriorCheckNEQ applies the NEQ predicate on the "prior_check" field.
func PriorCheckNEQ(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNEQ(FieldPriorCheck, v))
}

// PriorCheckIn applies the In predicate on the "prior_check" field.
func PriorCheckIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIn(FieldPriorCheck, vs...))
}

// PriorCheckNotIn applies the NotIn predicate on the "prior_check" field.
func PriorCheckNotIn(vs ...string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotIn(FieldPriorCheck, vs...))
}

// PriorCheckGT applies the GT predicate on the "prior_check" field.
func PriorCheckGT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGT(FieldPriorCheck, v))
}

// PriorCheckGTE applies the GTE predicate on the "prior_check" field.
func PriorCheckGTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGTE(FieldPriorCheck, v))
}

// PriorCheckLT applies the LT predicate on the "prior_check" field.
func PriorCheckLT(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLT(FieldPriorCheck, v))
}

// PriorCheckLTE applies the LTE predicate on the "prior_check" field.
func PriorCheckLTE(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLTE(FieldPriorCheck, v))
}

// PriorCheckContains applies the Contains predicate on the "prior_check" field.
func PriorCheckContains(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContains(FieldPriorCheck, v))
}

// PriorCheckHasPrefix applies the HasPrefix predicate on the "prior_check" field.
func PriorCheckHasPrefix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasPrefix(FieldPriorCheck, v))
}

// PriorCheckHasSuffix applies the HasSuffix predicate on the "prior_check" field.
func PriorCheckHasSuffix(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldHasSuffix(FieldPriorCheck, v))
}

// PriorCheckEqualFold applies the EqualFold predicate on the "prior_check" field.
func PriorCheckEqualFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEqualFold(FieldPriorCheck, v))
}

// PriorCheckContainsFold applies the ContainsFold predicate on the "prior_check" field.
func PriorCheckContainsFold(v string) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldContainsFold(FieldPriorCheck, v))
}

// ResourcesIsNil applies the IsNil predicate on the "resources" field.
func ResourcesIsNil() predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIsNull(FieldResources))
}

// ResourcesNotNil applies the NotNil predicate on the "resources" field.
func ResourcesNotNil() predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotNull(FieldResources))
}

// TotalMinutesEQ applies the EQ predicate on the "total_minutes" field.
func TotalMinutesEQ(v int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldTotalMinutes, v))
}

// TotalMinutesNEQ applies the NEQ predicate on the "total_minutes" field.
func TotalMinutesNEQ(v int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNEQ(FieldTotalMinutes, v))
}

// TotalMinutesIn applies the In predicate on the "total_minutes" field.
func TotalMinutesIn(vs ...int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIn(FieldTotalMinutes, vs...))
}

// TotalMinutesNotIn applies the NotIn predicate on the "total_minutes" field.
func TotalMinutesNotIn(vs ...int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotIn(FieldTotalMinutes, vs...))
}

// TotalMinutesGT applies the GT predicate on the "total_minutes" field.
func TotalMinutesGT(v int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGT(FieldTotalMinutes, v))
}

// TotalMinutesGTE applies the GTE predicate on the "total_minutes" field.
func TotalMinutesGTE(v int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGTE(FieldTotalMinutes, v))
}

// TotalMinutesLT applies the LT predicate on the "total_minutes" field.
func TotalMinutesLT(v int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLT(FieldTotalMinutes, v))
}

// TotalMinutesLTE applies the LTE predicate on the "total_minutes" field.
func TotalMinutesLTE(v int) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLTE(FieldTotalMinutes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LessonPlan {
	return predicate.LessonPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonPlan) predicate.LessonPlan {
	return predicate.LessonPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonPlan) predicate.LessonPlan {
	return predicate.LessonPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonPlan) predicate.LessonPlan {
	return predicate.LessonPlan(sql.NotPredicates(p))
}
