// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bloomtutor/ent/predicate"
	"github.com/abhisek/bloomtutor/ent/tutorattempt"
)

// TutorAttemptUpdate is the builder for updating TutorAttempt entities.
type TutorAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *TutorAttemptMutation
}

// Where appends a list predicates to the TutorAttemptUpdate builder.
func (_u *TutorAttemptUpdate) Where(ps ...predicate.TutorAttempt) *TutorAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TutorAttemptUpdate) SetSessionID(v string) *TutorAttemptUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableSessionID(v *string) *TutorAttemptUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TutorAttemptUpdate) SetLearnerID(v string) *TutorAttemptUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableLearnerID(v *string) *TutorAttemptUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TutorAttemptUpdate) SetSubject(v string) *TutorAttemptUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableSubject(v *string) *TutorAttemptUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TutorAttemptUpdate) SetTopic(v string) *TutorAttemptUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableTopic(v *string) *TutorAttemptUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *TutorAttemptUpdate) SetBloomLevel(v string) *TutorAttemptUpdate {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableBloomLevel(v *string) *TutorAttemptUpdate {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TutorAttemptUpdate) SetQuestion(v string) *TutorAttemptUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableQuestion(v *string) *TutorAttemptUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *TutorAttemptUpdate) SetAnswer(v string) *TutorAttemptUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableAnswer(v *string) *TutorAttemptUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TutorAttemptUpdate) SetCorrect(v bool) *TutorAttemptUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableCorrect(v *bool) *TutorAttemptUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TutorAttemptUpdate) SetConfidence(v float64) *TutorAttemptUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableConfidence(v *float64) *TutorAttemptUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TutorAttemptUpdate) AddConfidence(v float64) *TutorAttemptUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *TutorAttemptUpdate) SetFeedback(v string) *TutorAttemptUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableFeedback(v *string) *TutorAttemptUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *TutorAttemptUpdate) SetTimeSpentMs(v int) *TutorAttemptUpdate {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *TutorAttemptUpdate) SetNillableTimeSpentMs(v *int) *TutorAttemptUpdate {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *TutorAttemptUpdate) AddTimeSpentMs(v int) *TutorAttemptUpdate {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the TutorAttemptMutation object of the builder.
func (_u *TutorAttemptUpdate) Mutation() *TutorAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorAttemptUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := tutorattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := tutorattempt.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := tutorattempt.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := tutorattempt.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloomLevel(); ok {
		if err := tutorattempt.BloomLevelValidator(v); err != nil {
			return &ValidationError{Name: "bloom_level", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.bloom_level": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorattempt.Table, tutorattempt.Columns, sqlgraph.NewFieldSpec(tutorattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(tutorattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(tutorattempt.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(tutorattempt.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(tutorattempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(tutorattempt.FieldBloomLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(tutorattempt.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(tutorattempt.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(tutorattempt.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(tutorattempt.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(tutorattempt.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(tutorattempt.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(tutorattempt.FieldTimeSpentMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(tutorattempt.FieldTimeSpentMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorAttemptUpdateOne is the builder for updating a single TutorAttempt entity.
type TutorAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorAttemptMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TutorAttemptUpdateOne) SetSessionID(v string) *TutorAttemptUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableSessionID(v *string) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TutorAttemptUpdateOne) SetLearnerID(v string) *TutorAttemptUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableLearnerID(v *string) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TutorAttemptUpdateOne) SetSubject(v string) *TutorAttemptUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableSubject(v *string) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TutorAttemptUpdateOne) SetTopic(v string) *TutorAttemptUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableTopic(v *string) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *TutorAttemptUpdateOne) SetBloomLevel(v string) *TutorAttemptUpdateOne {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableBloomLevel(v *string) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TutorAttemptUpdateOne) SetQuestion(v string) *TutorAttemptUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableQuestion(v *string) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *TutorAttemptUpdateOne) SetAnswer(v string) *TutorAttemptUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableAnswer(v *string) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TutorAttemptUpdateOne) SetCorrect(v bool) *TutorAttemptUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableCorrect(v *bool) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TutorAttemptUpdateOne) SetConfidence(v float64) *TutorAttemptUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableConfidence(v *float64) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TutorAttemptUpdateOne) AddConfidence(v float64) *TutorAttemptUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *TutorAttemptUpdateOne) SetFeedback(v string) *TutorAttemptUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableFeedback(v *string) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *TutorAttemptUpdateOne) SetTimeSpentMs(v int) *TutorAttemptUpdateOne {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *TutorAttemptUpdateOne) SetNillableTimeSpentMs(v *int) *TutorAttemptUpdateOne {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *TutorAttemptUpdateOne) AddTimeSpentMs(v int) *TutorAttemptUpdateOne {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the TutorAttemptMutation object of the builder.
func (_u *TutorAttemptUpdateOne) Mutation() *TutorAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorAttemptUpdate builder.
func (_u *TutorAttemptUpdateOne) Where(ps ...predicate.TutorAttempt) *TutorAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorAttemptUpdateOne) Select(field string, fields ...string) *TutorAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorAttempt entity.
func (_u *TutorAttemptUpdateOne) Save(ctx context.Context) (*TutorAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorAttemptUpdateOne) SaveX(ctx context.Context) *TutorAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := tutorattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := tutorattempt.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := tutorattempt.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := tutorattempt.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloomLevel(); ok {
		if err := tutorattempt.BloomLevelValidator(v); err != nil {
			return &ValidationError{Name: "bloom_level", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.bloom_level": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorAttemptUpdateOne) sqlSave(ctx context.Context) (_node *TutorAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorattempt.Table, tutorattempt.Columns, sqlgraph.NewFieldSpec(tutorattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutorAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorattempt.FieldID)
		for _, f := range fields {
			if !tutorattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutorattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(tutorattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(tutorattempt.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(tutorattempt.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(tutorattempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(tutorattempt.FieldBloomLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(tutorattempt.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(tutorattempt.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(tutorattempt.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(tutorattempt.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(tutorattempt.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(tutorattempt.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(tutorattempt.FieldTimeSpentMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(tutorattempt.FieldTimeSpentMs, field.TypeInt, value)
	}
	_node = &TutorAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
