// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bloomtutor/ent/masteryrecord"
	"github.com/abhisek/bloomtutor/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryRecordUpdate) SetLearnerID(v string) *MasteryRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLearnerID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MasteryRecordUpdate) SetSubject(v string) *MasteryRecordUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableSubject(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MasteryRecordUpdate) SetTopic(v string) *MasteryRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableTopic(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *MasteryRecordUpdate) SetBloomLevel(v string) *MasteryRecordUpdate {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableBloomLevel(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryRecordUpdate) SetScore(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableScore(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryRecordUpdate) AddScore(v float64) *MasteryRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *MasteryRecordUpdate) SetAttempts(v int) *MasteryRecordUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableAttempts(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *MasteryRecordUpdate) AddAttempts(v int) *MasteryRecordUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *MasteryRecordUpdate) SetCorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableCorrectCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *MasteryRecordUpdate) AddCorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *MasteryRecordUpdate) SetIncorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableIncorrectCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *MasteryRecordUpdate) AddIncorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdate) SetLastPracticedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := masteryrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := masteryrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloomLevel(); ok {
		if err := masteryrecord.BloomLevelValidator(v); err != nil {
			return &ValidationError{Name: "bloom_level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.bloom_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := masteryrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.score": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(masteryrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(masteryrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(masteryrecord.FieldBloomLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(masteryrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(masteryrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryRecordUpdateOne) SetLearnerID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLearnerID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MasteryRecordUpdateOne) SetSubject(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableSubject(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MasteryRecordUpdateOne) SetTopic(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableTopic(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *MasteryRecordUpdateOne) SetBloomLevel(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableBloomLevel(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryRecordUpdateOne) SetScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableScore(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryRecordUpdateOne) AddScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *MasteryRecordUpdateOne) SetAttempts(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableAttempts(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *MasteryRecordUpdateOne) AddAttempts(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *MasteryRecordUpdateOne) SetCorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableCorrectCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *MasteryRecordUpdateOne) AddCorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *MasteryRecordUpdateOne) SetIncorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableIncorrectCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *MasteryRecordUpdateOne) AddIncorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdateOne) SetLastPracticedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := masteryrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := masteryrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloomLevel(); ok {
		if err := masteryrecord.BloomLevelValidator(v); err != nil {
			return &ValidationError{Name: "bloom_level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.bloom_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := masteryrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.score": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(masteryrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(masteryrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(masteryrecord.FieldBloomLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(masteryrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(masteryrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
