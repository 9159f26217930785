// Code generated by ent, DO NOT EDIT.

package learnerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bloomtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldLearnerID, v))
}

// PreferredMode applies equality check predicate on the "preferred_mode" field. It's identical to PreferredModeEQ.
func PreferredMode(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldPreferredMode, v))
}

// LearningStyle applies equality check predicate on the "learning_style" field. It's identical to LearningStyleEQ.
func LearningStyle(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldLearningStyle, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldSessionCount, v))
}

// TotalTimeMins applies equality check predicate on the "total_time_mins" field. It's identical to TotalTimeMinsEQ.
func TotalTimeMins(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldTotalTimeMins, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldLearnerID, v))
}

// PreferredModeEQ applies the EQ predicate on the "preferred_mode" field.
func PreferredModeEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldPreferredMode, v))
}

// PreferredModeNEQ applies the NEQ predicate on the "preferred_mode" field.
func PreferredModeNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldPreferredMode, v))
}

// PreferredModeIn applies the In predicate on the "preferred_mode" field.
func PreferredModeIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldPreferredMode, vs...))
}

// PreferredModeNotIn applies the NotIn predicate on the "preferred_mode" field.
func PreferredModeNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldPreferredMode, vs...))
}

// PreferredModeGT applies the GT predicate on the "preferred_mode" field.
func PreferredModeGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldPreferredMode, v))
}

// PreferredModeGTE applies the GTE predicate on the "preferred_mode" field.
func PreferredModeGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldPreferredMode, v))
}

// PreferredModeLT applies the LT predicate on the "preferred_mode" field.
func PreferredModeLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldPreferredMode, v))
}

// PreferredModeLTE applies the LTE predicate on the "preferred_mode" field.
func PreferredModeLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldPreferredMode, v))
}

// PreferredModeContains applies the Contains predicate on the "preferred_mode" field.
func PreferredModeContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldPreferredMode, v))
}

// PreferredModeHasPrefix applies the HasPrefix predicate on the "preferred_mode" field.
func PreferredModeHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldPreferredMode, v))
}

// PreferredModeHasSuffix applies the HasSuffix predicate on the "preferred_mode" field.
func PreferredModeHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldPreferredMode, v))
}

// PreferredModeEqualFold applies the EqualFold predicate on the "preferred_mode" field.
func PreferredModeEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldPreferredMode, v))
}

// PreferredModeContainsFold applies the ContainsFold predicate on the "preferred_mode" field.
func PreferredModeContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldPreferredMode, v))
}

// LearningStyleEQ applies the EQ predicate on the "learning_style" field.
func LearningStyleEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldLearningStyle, v))
}

// LearningStyleNEQ applies the NEQ predicate on the "learning_style" field.
func LearningStyleNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldLearningStyle, v))
}

// LearningStyleIn applies the In predicate on the "learning_style" field.
func LearningStyleIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldLearningStyle, vs...))
}

// LearningStyleNotIn applies the NotIn predicate on the "learning_style" field.
func LearningStyleNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldLearningStyle, vs...))
}

// LearningStyleGT applies the GT predicate on the "learning_style" field.
func LearningStyleGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldLearningStyle, v))
}

// LearningStyleGTE applies the GTE predicate on the "learning_style" field.
func LearningStyleGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldLearningStyle, v))
}

// LearningStyleLT applies the LT predicate on the "learning_style" field.
func LearningStyleLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldLearningStyle, v))
}

// LearningStyleLTE applies the LTE predicate on the "learning_style" field.
func LearningStyleLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldLearningStyle, v))
}

// LearningStyleContains applies the Contains predicate on the "learning_style" field.
func LearningStyleContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldLearningStyle, v))
}

// LearningStyleHasPrefix applies the HasPrefix predicate on the "learning_style" field.
func LearningStyleHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldLearningStyle, v))
}

// LearningStyleHasSuffix applies the HasSuffix predicate on the "learning_style" field.
func LearningStyleHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldLearningStyle, v))
}

// LearningStyleEqualFold applies the EqualFold predicate on the "learning_style" field.
func LearningStyleEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldLearningStyle, v))
}

// LearningStyleContainsFold applies the ContainsFold predicate on the "learning_style" field.
func LearningStyleContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldLearningStyle, v))
}

// TrackedErrorsIsNil applies the IsNil predicate on the "tracked_errors" field.
func TrackedErrorsIsNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIsNull(FieldTrackedErrors))
}

// TrackedErrorsNotNil applies the NotNil predicate on the "tracked_errors" field.
func TrackedErrorsNotNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotNull(FieldTrackedErrors))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldSessionCount, v))
}

// TotalTimeMinsEQ applies the EQ predicate on the "total_time_mins" field.
func TotalTimeMinsEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldTotalTimeMins, v))
}

// TotalTimeMinsNEQ applies the NEQ predicate on the "total_time_mins" field.
func TotalTimeMinsNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldTotalTimeMins, v))
}

// TotalTimeMinsIn applies the In predicate on the "total_time_mins" field.
func TotalTimeMinsIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldTotalTimeMins, vs...))
}

// TotalTimeMinsNotIn applies the NotIn predicate on the "total_time_mins" field.
func TotalTimeMinsNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldTotalTimeMins, vs...))
}

// TotalTimeMinsGT applies the GT predicate on the "total_time_mins" field.
func TotalTimeMinsGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldTotalTimeMins, v))
}

// TotalTimeMinsGTE applies the GTE predicate on the "total_time_mins" field.
func TotalTimeMinsGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldTotalTimeMins, v))
}

// TotalTimeMinsLT applies the LT predicate on the "total_time_mins" field.
func TotalTimeMinsLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldTotalTimeMins, v))
}

// TotalTimeMinsLTE applies the LTE predicate on the "total_time_mins" field.
func TotalTimeMinsLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldTotalTimeMins, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.NotPredicates(p))
}
