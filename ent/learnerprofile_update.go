// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bloomtutor/ent/learnerprofile"
	"github.com/abhisek/bloomtutor/ent/predicate"
	"github.com/abhisek/bloomtutor/ent/schema"
)

// LearnerProfileUpdate is the builder for updating LearnerProfile entities.
type LearnerProfileUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdate) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPreferredMode sets the "preferred_mode" field.
func (_u *LearnerProfileUpdate) SetPreferredMode(v string) *LearnerProfileUpdate {
	_u.mutation.SetPreferredMode(v)
	return _u
}

// SetNillablePreferredMode sets the "preferred_mode" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillablePreferredMode(v *string) *LearnerProfileUpdate {
	if v != nil {
		_u.SetPreferredMode(*v)
	}
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *LearnerProfileUpdate) SetLearningStyle(v string) *LearnerProfileUpdate {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableLearningStyle(v *string) *LearnerProfileUpdate {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetTrackedErrors sets the "tracked_errors" field.
func (_u *LearnerProfileUpdate) SetTrackedErrors(v []schema.TrackedError) *LearnerProfileUpdate {
	_u.mutation.SetTrackedErrors(v)
	return _u
}

// AppendTrackedErrors appends value to the "tracked_errors" field.
func (_u *LearnerProfileUpdate) AppendTrackedErrors(v []schema.TrackedError) *LearnerProfileUpdate {
	_u.mutation.AppendTrackedErrors(v)
	return _u
}

// ClearTrackedErrors clears the value of the "tracked_errors" field.
func (_u *LearnerProfileUpdate) ClearTrackedErrors() *LearnerProfileUpdate {
	_u.mutation.ClearTrackedErrors()
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *LearnerProfileUpdate) SetSessionCount(v int) *LearnerProfileUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableSessionCount(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *LearnerProfileUpdate) AddSessionCount(v int) *LearnerProfileUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetTotalTimeMins sets the "total_time_mins" field.
func (_u *LearnerProfileUpdate) SetTotalTimeMins(v int) *LearnerProfileUpdate {
	_u.mutation.ResetTotalTimeMins()
	_u.mutation.SetTotalTimeMins(v)
	return _u
}

// SetNillableTotalTimeMins sets the "total_time_mins" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableTotalTimeMins(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetTotalTimeMins(*v)
	}
	return _u
}

// AddTotalTimeMins adds value to the "total_time_mins" field.
func (_u *LearnerProfileUpdate) AddTotalTimeMins(v int) *LearnerProfileUpdate {
	_u.mutation.AddTotalTimeMins(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerProfileUpdate) SetUpdatedAt(v time.Time) *LearnerProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdate) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PreferredMode(); ok {
		_spec.SetField(learnerprofile.FieldPreferredMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(learnerprofile.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrackedErrors(); ok {
		_spec.SetField(learnerprofile.FieldTrackedErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrackedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldTrackedErrors, value)
		})
	}
	if _u.mutation.TrackedErrorsCleared() {
		_spec.ClearField(learnerprofile.FieldTrackedErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(learnerprofile.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(learnerprofile.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeMins(); ok {
		_spec.SetField(learnerprofile.FieldTotalTimeMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeMins(); ok {
		_spec.AddField(learnerprofile.FieldTotalTimeMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerProfileUpdateOne is the builder for updating a single LearnerProfile entity.
type LearnerProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// SetPreferredMode sets the "preferred_mode" field.
func (_u *LearnerProfileUpdateOne) SetPreferredMode(v string) *LearnerProfileUpdateOne {
	_u.mutation.SetPreferredMode(v)
	return _u
}

// SetNillablePreferredMode sets the "preferred_mode" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillablePreferredMode(v *string) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetPreferredMode(*v)
	}
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *LearnerProfileUpdateOne) SetLearningStyle(v string) *LearnerProfileUpdateOne {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableLearningStyle(v *string) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetTrackedErrors sets the "tracked_errors" field.
func (_u *LearnerProfileUpdateOne) SetTrackedErrors(v []schema.TrackedError) *LearnerProfileUpdateOne {
	_u.mutation.SetTrackedErrors(v)
	return _u
}

// AppendTrackedErrors appends value to the "tracked_errors" field.
func (_u *LearnerProfileUpdateOne) AppendTrackedErrors(v []schema.TrackedError) *LearnerProfileUpdateOne {
	_u.mutation.AppendTrackedErrors(v)
	return _u
}

// ClearTrackedErrors clears the value of the "tracked_errors" field.
func (_u *LearnerProfileUpdateOne) ClearTrackedErrors() *LearnerProfileUpdateOne {
	_u.mutation.ClearTrackedErrors()
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *LearnerProfileUpdateOne) SetSessionCount(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableSessionCount(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *LearnerProfileUpdateOne) AddSessionCount(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetTotalTimeMins sets the "total_time_mins" field.
func (_u *LearnerProfileUpdateOne) SetTotalTimeMins(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetTotalTimeMins()
	_u.mutation.SetTotalTimeMins(v)
	return _u
}

// SetNillableTotalTimeMins sets the "total_time_mins" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableTotalTimeMins(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetTotalTimeMins(*v)
	}
	return _u
}

// AddTotalTimeMins adds value to the "total_time_mins" field.
func (_u *LearnerProfileUpdateOne) AddTotalTimeMins(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddTotalTimeMins(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerProfileUpdateOne) SetUpdatedAt(v time.Time) *LearnerProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdateOne) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdateOne) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerProfileUpdateOne) Select(field string, fields ...string) *LearnerProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerProfile entity.
func (_u *LearnerProfileUpdateOne) Save(ctx context.Context) (*LearnerProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) SaveX(ctx context.Context) *LearnerProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerProfileUpdateOne) sqlSave(ctx context.Context) (_node *LearnerProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerprofile.FieldID)
		for _, f := range fields {
			if !learnerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerprofile.FieldID {
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
	if value, ok := _u.mutation.PreferredMode(); ok {
		_spec.SetField(learnerprofile.FieldPreferredMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(learnerprofile.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrackedErrors(); ok {
		_spec.SetField(learnerprofile.FieldTrackedErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrackedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldTrackedErrors, value)
		})
	}
	if _u.mutation.TrackedErrorsCleared() {
		_spec.ClearField(learnerprofile.FieldTrackedErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(learnerprofile.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(learnerprofile.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeMins(); ok {
		_spec.SetField(learnerprofile.FieldTotalTimeMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeMins(); ok {
		_spec.AddField(learnerprofile.FieldTotalTimeMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnerProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
