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
	"github.com/abhisek/bloomtutor/ent/lessonplan"
	"github.com/abhisek/bloomtutor/ent/schema"
)

// LessonPlanCreate is the builder for creating a LessonPlan entity.
type LessonPlanCreate struct {
	config
	mutation *LessonPlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *LessonPlanCreate) SetSessionID(v string) *LessonPlanCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *LessonPlanCreate) SetLearnerID(v string) *LessonPlanCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *LessonPlanCreate) SetSubject(v string) *LessonPlanCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *LessonPlanCreate) SetTopic(v string) *LessonPlanCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetGradeLevel sets the "grade_level" field.
func (_c *LessonPlanCreate) SetGradeLevel(v string) *LessonPlanCreate {
	_c.mutation.SetGradeLevel(v)
	return _c
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_c *LessonPlanCreate) SetNillableGradeLevel(v *string) *LessonPlanCreate {
	if v != nil {
		_c.SetGradeLevel(*v)
	}
	return _c
}

// SetGoals sets the "goals" field.
func (_c *LessonPlanCreate) SetGoals(v []string) *LessonPlanCreate {
	_c.mutation.SetGoals(v)
	return _c
}

// SetPriorCheck sets the "prior_check" field.
func (_c *LessonPlanCreate) SetPriorCheck(v string) *LessonPlanCreate {
	_c.mutation.SetPriorCheck(v)
	return _c
}

// SetNillablePriorCheck sets the "prior_check" field if the given value is not nil.
func (_c *LessonPlanCreate) SetNillablePriorCheck(v *string) *LessonPlanCreate {
	if v != nil {
		_c.SetPriorCheck(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *LessonPlanCreate) SetSteps(v []schema.LessonStepData) *LessonPlanCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetResources sets the "resources" field.
func (_c *LessonPlanCreate) SetResources(v []string) *LessonPlanCreate {
	_c.mutation.SetResources(v)
	return _c
}

// SetTotalMinutes sets the "total_minutes" field.
func (_c *LessonPlanCreate) SetTotalMinutes(v int) *LessonPlanCreate {
	_c.mutation.SetTotalMinutes(v)
	return _c
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_c *LessonPlanCreate) SetNillableTotalMinutes(v *int) *LessonPlanCreate {
	if v != nil {
		_c.SetTotalMinutes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonPlanCreate) SetCreatedAt(v time.Time) *LessonPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonPlanCreate) SetNillableCreatedAt(v *time.Time) *LessonPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonPlanMutation object of the builder.
func (_c *LessonPlanCreate) Mutation() *LessonPlanMutation {
	return _c.mutation
}

// Save creates the LessonPlan in the database.
func (_c *LessonPlanCreate) Save(ctx context.Context) (*LessonPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonPlanCreate) SaveX(ctx context.Context) *LessonPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonPlanCreate) defaults() {
	if _, ok := _c.mutation.GradeLevel(); !ok {
		v := lessonplan.DefaultGradeLevel
		_c.mutation.SetGradeLevel(v)
	}
	if _, ok := _c.mutation.PriorCheck(); !ok {
		v := lessonplan.DefaultPriorCheck
		_c.mutation.SetPriorCheck(v)
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		v := lessonplan.DefaultTotalMinutes
		_c.mutation.SetTotalMinutes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lessonplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonPlanCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LessonPlan.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := lessonplan.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LessonPlan.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := lessonplan.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "LessonPlan.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := lessonplan.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "LessonPlan.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := lessonplan.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonPlan.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GradeLevel(); !ok {
		return &ValidationError{Name: "grade_level", err: errors.New(`ent: missing required field "LessonPlan.grade_level"`)}
	}
	if _, ok := _c.mutation.Goals(); !ok {
		return &ValidationError{Name: "goals", err: errors.New(`ent: missing required field "LessonPlan.goals"`)}
	}
	if _, ok := _c.mutation.PriorCheck(); !ok {
		return &ValidationError{Name: "prior_check", err: errors.New(`ent: missing required field "LessonPlan.prior_check"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "LessonPlan.steps"`)}
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		return &ValidationError{Name: "total_minutes", err: errors.New(`ent: missing required field "LessonPlan.total_minutes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LessonPlan.created_at"`)}
	}
	return nil
}

func (_c *LessonPlanCreate) sqlSave(ctx context.Context) (*LessonPlan, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonPlanCreate) createSpec() (*LessonPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonplan.Table, sqlgraph.NewFieldSpec(lessonplan.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(lessonplan.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(lessonplan.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(lessonplan.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(lessonplan.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.GradeLevel(); ok {
		_spec.SetField(lessonplan.FieldGradeLevel, field.TypeString, value)
		_node.GradeLevel = value
	}
	if value, ok := _c.mutation.Goals(); ok {
		_spec.SetField(lessonplan.FieldGoals, field.TypeJSON, value)
		_node.Goals = value
	}
	if value, ok := _c.mutation.PriorCheck(); ok {
		_spec.SetField(lessonplan.FieldPriorCheck, field.TypeString, value)
		_node.PriorCheck = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(lessonplan.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.Resources(); ok {
		_spec.SetField(lessonplan.FieldResources, field.TypeJSON, value)
		_node.Resources = value
	}
	if value, ok := _c.mutation.TotalMinutes(); ok {
		_spec.SetField(lessonplan.FieldTotalMinutes, field.TypeInt, value)
		_node.TotalMinutes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lessonplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonPlan.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonPlanUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonPlanCreate) OnConflict(opts ...sql.ConflictOption) *LessonPlanUpsertOne {
	_c.conflict = opts
	return &LessonPlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonPlanCreate) OnConflictColumns(columns ...string) *LessonPlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonPlanUpsertOne{
		create: _c,
	}
}

type (
	// LessonPlanUpsertOne is the builder for "upsert"-ing
	//  one LessonPlan node.
	LessonPlanUpsertOne struct {
		create *LessonPlanCreate
	}

	// LessonPlanUpsert is the "OnConflict" setter.
	LessonPlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *LessonPlanUpsert) SetLearnerID(v string) *LessonPlanUpsert {
	u.Set(lessonplan.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *LessonPlanUpsert) UpdateLearnerID() *LessonPlanUpsert {
	u.SetExcluded(lessonplan.FieldLearnerID)
	return u
}

// SetSubject sets the "subject" field.
func (u *LessonPlanUpsert) SetSubject(v string) *LessonPlanUpsert {
	u.Set(lessonplan.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *LessonPlanUpsert) UpdateSubject() *LessonPlanUpsert {
	u.SetExcluded(lessonplan.FieldSubject)
	return u
}

// SetTopic sets the "topic" field.
func (u *LessonPlanUpsert) SetTopic(v string) *LessonPlanUpsert {
	u.Set(lessonplan.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *LessonPlanUpsert) UpdateTopic() *LessonPlanUpsert {
	u.SetExcluded(lessonplan.FieldTopic)
	return u
}

// SetGradeLevel sets the "grade_level" field.
func (u *LessonPlanUpsert) SetGradeLevel(v string) *LessonPlanUpsert {
	u.Set(lessonplan.FieldGradeLevel, v)
	return u
}

// UpdateGradeLevel sets the "grade_level" field to the value that was provided on create.
func (u *LessonPlanUpsert) UpdateGradeLevel() *LessonPlanUpsert {
	u.SetExcluded(lessonplan.FieldGradeLevel)
	return u
}

// SetGoals sets the "goals" field.
func (u *LessonPlanUpsert) SetGoals(v []string) *LessonPlanUpsert {
	u.Set(lessonplan.FieldGoals, v)
	return u
}

// UpdateGoals sets the "goals" field to the value that was provided on create.
func (u *LessonPlanUpsert) UpdateGoals() *LessonPlanUpsert {
	u.SetExcluded(lessonplan.FieldGoals)
	return u
}

// SetPriorCheck sets the "prior_check" field.
func (u *LessonPlanUpsert) SetPriorCheck(v string) *LessonPlanUpsert {
	u.Set(lessonplan.FieldPriorCheck, v)
	return u
}

// UpdatePriorCheck sets the "prior_check" field to the value that was provided on create.
func (u *LessonPlanUpsert) UpdatePriorCheck() *LessonPlanUpsert {
	u.SetExcluded(lessonplan.FieldPriorCheck)
	return u
}

// SetSteps sets the "steps" field.
func (u *LessonPlanUpsert) SetSteps(v []schema.LessonStepData) *LessonPlanUpsert {
	u.Set(lessonplan.FieldSteps, v)
	return u
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *LessonPlanUpsert) UpdateSteps() *LessonPlanUpsert {
	u.SetExcluded(lessonplan.FieldSteps)
	return u
}

// SetResources sets the "resources" field.
func (u *LessonPlanUpsert) SetResources(v []string) *LessonPlanUpsert {
	u.Set(lessonplan.FieldResources, v)
	return u
}

// UpdateResources sets the "resources" field to the value that was provided on create.
func (u *LessonPlanUpsert) UpdateResources() *LessonPlanUpsert {
	u.SetExcluded(lessonplan.FieldResources)
	return u
}

// ClearResources clears the value of the "resources" field.
func (u *LessonPlanUpsert) ClearResources() *LessonPlanUpsert {
	u.SetNull(lessonplan.FieldResources)
	return u
}

// SetTotalMinutes sets the "total_minutes" field.
func (u *LessonPlanUpsert) SetTotalMinutes(v int) *LessonPlanUpsert {
	u.Set(lessonplan.FieldTotalMinutes, v)
	return u
}

// UpdateTotalMinutes sets the "total_minutes" field to the value that was provided on create.
func (u *LessonPlanUpsert) UpdateTotalMinutes() *LessonPlanUpsert {
	u.SetExcluded(lessonplan.FieldTotalMinutes)
	return u
}

// AddTotalMinutes adds v to the "total_minutes" field.
func (u *LessonPlanUpsert) AddTotalMinutes(v int) *LessonPlanUpsert {
	u.Add(lessonplan.FieldTotalMinutes, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LessonPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonPlanUpsertOne) UpdateNewValues() *LessonPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(lessonplan.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lessonplan.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonPlan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonPlanUpsertOne) Ignore() *LessonPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonPlanUpsertOne) DoNothing() *LessonPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonPlanCreate.OnConflict
// documentation for more info.
func (u *LessonPlanUpsertOne) Update(set func(*LessonPlanUpsert)) *LessonPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *LessonPlanUpsertOne) SetLearnerID(v string) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *LessonPlanUpsertOne) UpdateLearnerID() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSubject sets the "subject" field.
func (u *LessonPlanUpsertOne) SetSubject(v string) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *LessonPlanUpsertOne) UpdateSubject() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateSubject()
	})
}

// SetTopic sets the "topic" field.
func (u *LessonPlanUpsertOne) SetTopic(v string) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *LessonPlanUpsertOne) UpdateTopic() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateTopic()
	})
}

// SetGradeLevel sets the "grade_level" field.
func (u *LessonPlanUpsertOne) SetGradeLevel(v string) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetGradeLevel(v)
	})
}

// UpdateGradeLevel sets the "grade_level" field to the value that was provided on create.
func (u *LessonPlanUpsertOne) UpdateGradeLevel() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateGradeLevel()
	})
}

// SetGoals sets the "goals" field.
func (u *LessonPlanUpsertOne) SetGoals(v []string) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetGoals(v)
	})
}

// UpdateGoals sets the "goals" field to the value that was provided on create.
func (u *LessonPlanUpsertOne) UpdateGoals() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateGoals()
	})
}

// SetPriorCheck sets the "prior_check" field.
func (u *LessonPlanUpsertOne) SetPriorCheck(v string) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetPriorCheck(v)
	})
}

// UpdatePriorCheck sets the "prior_check" field to the value that was provided on create.
func (u *LessonPlanUpsertOne) UpdatePriorCheck() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdatePriorCheck()
	})
}

// SetSteps sets the "steps" field.
func (u *LessonPlanUpsertOne) SetSteps(v []schema.LessonStepData) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *LessonPlanUpsertOne) UpdateSteps() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateSteps()
	})
}

// SetResources sets the "resources" field.
func (u *LessonPlanUpsertOne) SetResources(v []string) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetResources(v)
	})
}

// UpdateResources sets the "resources" field to the value that was provided on create.
func (u *LessonPlanUpsertOne) UpdateResources() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateResources()
	})
}

// ClearResources clears the value of the "resources" field.
func (u *LessonPlanUpsertOne) ClearResources() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.ClearResources()
	})
}

// SetTotalMinutes sets the "total_minutes" field.
func (u *LessonPlanUpsertOne) SetTotalMinutes(v int) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetTotalMinutes(v)
	})
}

// AddTotalMinutes adds v to the "total_minutes" field.
func (u *LessonPlanUpsertOne) AddTotalMinutes(v int) *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.AddTotalMinutes(v)
	})
}

// UpdateTotalMinutes sets the "total_minutes" field to the value that was provided on create.
func (u *LessonPlanUpsertOne) UpdateTotalMinutes() *LessonPlanUpsertOne {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateTotalMinutes()
	})
}

// Exec executes the query.
func (u *LessonPlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonPlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonPlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonPlanUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonPlanUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonPlanCreateBulk is the builder for creating many LessonPlan entities in bulk.
type LessonPlanCreateBulk struct {
	config
	err      error
	builders []*LessonPlanCreate
	conflict []sql.ConflictOption
}

// Save creates the LessonPlan entities in the database.
func (_c *LessonPlanCreateBulk) Save(ctx context.Context) ([]*LessonPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonPlanMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonPlanCreateBulk) SaveX(ctx context.Context) []*LessonPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonPlan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonPlanUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonPlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonPlanUpsertBulk {
	_c.conflict = opts
	return &LessonPlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonPlanCreateBulk) OnConflictColumns(columns ...string) *LessonPlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonPlanUpsertBulk{
		create: _c,
	}
}

// LessonPlanUpsertBulk is the builder for "upsert"-ing
// a bulk of LessonPlan nodes.
type LessonPlanUpsertBulk struct {
	create *LessonPlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LessonPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonPlanUpsertBulk) UpdateNewValues() *LessonPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(lessonplan.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lessonplan.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonPlan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonPlanUpsertBulk) Ignore() *LessonPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonPlanUpsertBulk) DoNothing() *LessonPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonPlanCreateBulk.OnConflict
// documentation for more info.
func (u *LessonPlanUpsertBulk) Update(set func(*LessonPlanUpsert)) *LessonPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *LessonPlanUpsertBulk) SetLearnerID(v string) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *LessonPlanUpsertBulk) UpdateLearnerID() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSubject sets the "subject" field.
func (u *LessonPlanUpsertBulk) SetSubject(v string) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *LessonPlanUpsertBulk) UpdateSubject() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateSubject()
	})
}

// SetTopic sets the "topic" field.
func (u *LessonPlanUpsertBulk) SetTopic(v string) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *LessonPlanUpsertBulk) UpdateTopic() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateTopic()
	})
}

// SetGradeLevel sets the "grade_level" field.
func (u *LessonPlanUpsertBulk) SetGradeLevel(v string) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetGradeLevel(v)
	})
}

// UpdateGradeLevel sets the "grade_level" field to the value that was provided on create.
func (u *LessonPlanUpsertBulk) UpdateGradeLevel() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateGradeLevel()
	})
}

// SetGoals sets the "goals" field.
func (u *LessonPlanUpsertBulk) SetGoals(v []string) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetGoals(v)
	})
}

// UpdateGoals sets the "goals" field to the value that was provided on create.
func (u *LessonPlanUpsertBulk) UpdateGoals() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateGoals()
	})
}

// SetPriorCheck sets the "prior_check" field.
func (u *LessonPlanUpsertBulk) SetPriorCheck(v string) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetPriorCheck(v)
	})
}

// UpdatePriorCheck sets the "prior_check" field to the value that was provided on create.
func (u *LessonPlanUpsertBulk) UpdatePriorCheck() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdatePriorCheck()
	})
}

// SetSteps sets the "steps" field.
func (u *LessonPlanUpsertBulk) SetSteps(v []schema.LessonStepData) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *LessonPlanUpsertBulk) UpdateSteps() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateSteps()
	})
}

// SetResources sets the "resources" field.
func (u *LessonPlanUpsertBulk) SetResources(v []string) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetResources(v)
	})
}

// UpdateResources sets the "resources" field to the value that was provided on create.
func (u *LessonPlanUpsertBulk) UpdateResources() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateResources()
	})
}

// ClearResources clears the value of the "resources" field.
func (u *LessonPlanUpsertBulk) ClearResources() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.ClearResources()
	})
}

// SetTotalMinutes sets the "total_minutes" field.
func (u *LessonPlanUpsertBulk) SetTotalMinutes(v int) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.SetTotalMinutes(v)
	})
}

// AddTotalMinutes adds v to the "total_minutes" field.
func (u *LessonPlanUpsertBulk) AddTotalMinutes(v int) *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.AddTotalMinutes(v)
	})
}

// UpdateTotalMinutes sets the "total_minutes" field to the value that was provided on create.
func (u *LessonPlanUpsertBulk) UpdateTotalMinutes() *LessonPlanUpsertBulk {
	return u.Update(func(s *LessonPlanUpsert) {
		s.UpdateTotalMinutes()
	})
}

// Exec executes the query.
func (u *LessonPlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonPlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonPlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonPlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
