// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bloomtutor/ent/lessonplan"
	"github.com/abhisek/bloomtutor/ent/predicate"
	"github.com/abhisek/bloomtutor/ent/schema"
)

// LessonPlanUpdate is the builder for updating LessonPlan entities.
type LessonPlanUpdate struct {
	config
	hooks    []Hook
	mutation *LessonPlanMutation
}

// Where appends a list predicates to the LessonPlanUpdate builder.
func (_u *LessonPlanUpdate) Where(ps ...predicate.LessonPlan) *LessonPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LessonPlanUpdate) SetLearnerID(v string) *LessonPlanUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LessonPlanUpdate) SetNillableLearnerID(v *string) *LessonPlanUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonPlanUpdate) SetSubject(v string) *LessonPlanUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonPlanUpdate) SetNillableSubject(v *string) *LessonPlanUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonPlanUpdate) SetTopic(v string) *LessonPlanUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonPlanUpdate) SetNillableTopic(v *string) *LessonPlanUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *LessonPlanUpdate) SetGradeLevel(v string) *LessonPlanUpdate {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *LessonPlanUpdate) SetNillableGradeLevel(v *string) *LessonPlanUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetGoals sets the "goals" field.
func (_u *LessonPlanUpdate) SetGoals(v []string) *LessonPlanUpdate {
	_u.mutation.SetGoals(v)
	return _u
}

// AppendGoals appends value to the "goals" field.
func (_u *LessonPlanUpdate) AppendGoals(v []string) *LessonPlanUpdate {
	_u.mutation.AppendGoals(v)
	return _u
}

// SetPriorCheck sets the "prior_check" field.
func (_u *LessonPlanUpdate) SetPriorCheck(v string) *LessonPlanUpdate {
	_u.mutation.SetPriorCheck(v)
	return _u
}

// SetNillablePriorCheck sets the "prior_check" field if the given value is not nil.
func (_u *LessonPlanUpdate) SetNillablePriorCheck(v *string) *LessonPlanUpdate {
	if v != nil {
		_u.SetPriorCheck(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *LessonPlanUpdate) SetSteps(v []schema.LessonStepData) *LessonPlanUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *LessonPlanUpdate) AppendSteps(v []schema.LessonStepData) *LessonPlanUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetResources sets the "resources" field.
func (_u *LessonPlanUpdate) SetResources(v []string) *LessonPlanUpdate {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *LessonPlanUpdate) AppendResources(v []string) *LessonPlanUpdate {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *LessonPlanUpdate) ClearResources() *LessonPlanUpdate {
	_u.mutation.ClearResources()
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *LessonPlanUpdate) SetTotalMinutes(v int) *LessonPlanUpdate {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *LessonPlanUpdate) SetNillableTotalMinutes(v *int) *LessonPlanUpdate {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *LessonPlanUpdate) AddTotalMinutes(v int) *LessonPlanUpdate {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// Mutation returns the LessonPlanMutation object of the builder.
func (_u *LessonPlanUpdate) Mutation() *LessonPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonPlanUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := lessonplan.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := lessonplan.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonplan.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonplan.Table, lessonplan.Columns, sqlgraph.NewFieldSpec(lessonplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(lessonplan.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lessonplan.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonplan.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(lessonplan.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(lessonplan.FieldGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplan.FieldGoals, value)
		})
	}
	if value, ok := _u.mutation.PriorCheck(); ok {
		_spec.SetField(lessonplan.FieldPriorCheck, field.TypeString, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(lessonplan.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplan.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(lessonplan.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplan.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(lessonplan.FieldResources, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(lessonplan.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(lessonplan.FieldTotalMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonPlanUpdateOne is the builder for updating a single LessonPlan entity.
type LessonPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonPlanMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LessonPlanUpdateOne) SetLearnerID(v string) *LessonPlanUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LessonPlanUpdateOne) SetNillableLearnerID(v *string) *LessonPlanUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonPlanUpdateOne) SetSubject(v string) *LessonPlanUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonPlanUpdateOne) SetNillableSubject(v *string) *LessonPlanUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonPlanUpdateOne) SetTopic(v string) *LessonPlanUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonPlanUpdateOne) SetNillableTopic(v *string) *LessonPlanUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *LessonPlanUpdateOne) SetGradeLevel(v string) *LessonPlanUpdateOne {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *LessonPlanUpdateOne) SetNillableGradeLevel(v *string) *LessonPlanUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetGoals sets the "goals" field.
func (_u *LessonPlanUpdateOne) SetGoals(v []string) *LessonPlanUpdateOne {
	_u.mutation.SetGoals(v)
	return _u
}

// AppendGoals appends value to the "goals" field.
func (_u *LessonPlanUpdateOne) AppendGoals(v []string) *LessonPlanUpdateOne {
	_u.mutation.AppendGoals(v)
	return _u
}

// SetPriorCheck sets the "prior_check" field.
func (_u *LessonPlanUpdateOne) SetPriorCheck(v string) *LessonPlanUpdateOne {
	_u.mutation.SetPriorCheck(v)
	return _u
}

// SetNillablePriorCheck sets the "prior_check" field if the given value is not nil.
func (_u *LessonPlanUpdateOne) SetNillablePriorCheck(v *string) *LessonPlanUpdateOne {
	if v != nil {
		_u.SetPriorCheck(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *LessonPlanUpdateOne) SetSteps(v []schema.LessonStepData) *LessonPlanUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *LessonPlanUpdateOne) AppendSteps(v []schema.LessonStepData) *LessonPlanUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetResources sets the "resources" field.
func (_u *LessonPlanUpdateOne) SetResources(v []string) *LessonPlanUpdateOne {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *LessonPlanUpdateOne) AppendResources(v []string) *LessonPlanUpdateOne {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *LessonPlanUpdateOne) ClearResources() *LessonPlanUpdateOne {
	_u.mutation.ClearResources()
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *LessonPlanUpdateOne) SetTotalMinutes(v int) *LessonPlanUpdateOne {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *LessonPlanUpdateOne) SetNillableTotalMinutes(v *int) *LessonPlanUpdateOne {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *LessonPlanUpdateOne) AddTotalMinutes(v int) *LessonPlanUpdateOne {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// Mutation returns the LessonPlanMutation object of the builder.
func (_u *LessonPlanUpdateOne) Mutation() *LessonPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonPlanUpdate builder.
func (_u *LessonPlanUpdateOne) Where(ps ...predicate.LessonPlan) *LessonPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonPlanUpdateOne) Select(field string, fields ...string) *LessonPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonPlan entity.
func (_u *LessonPlanUpdateOne) Save(ctx context.Context) (*LessonPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPlanUpdateOne) SaveX(ctx context.Context) *LessonPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonPlanUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := lessonplan.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := lessonplan.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonplan.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonPlanUpdateOne) sqlSave(ctx context.Context) (_node *LessonPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonplan.Table, lessonplan.Columns, sqlgraph.NewFieldSpec(lessonplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonplan.FieldID)
		for _, f := range fields {
			if !lessonplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonplan.FieldID {
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
		_spec.SetField(lessonplan.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lessonplan.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonplan.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(lessonplan.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(lessonplan.FieldGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplan.FieldGoals, value)
		})
	}
	if value, ok := _u.mutation.PriorCheck(); ok {
		_spec.SetField(lessonplan.FieldPriorCheck, field.TypeString, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(lessonplan.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplan.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(lessonplan.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplan.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(lessonplan.FieldResources, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(lessonplan.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(lessonplan.FieldTotalMinutes, field.TypeInt, value)
	}
	_node = &LessonPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
