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
	"github.com/abhisek/bloomtutor/ent/learnerprofile"
	"github.com/abhisek/bloomtutor/ent/schema"
)

// LearnerProfileCreate is the builder for creating a LearnerProfile entity.
type LearnerProfileCreate struct {
	config
	mutation *LearnerProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *LearnerProfileCreate) SetLearnerID(v string) *LearnerProfileCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetPreferredMode sets the "preferred_mode" field.
func (_c *LearnerProfileCreate) SetPreferredMode(v string) *LearnerProfileCreate {
	_c.mutation.SetPreferredMode(v)
	return _c
}

// SetNillablePreferredMode sets the "preferred_mode" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillablePreferredMode(v *string) *LearnerProfileCreate {
	if v != nil {
		_c.SetPreferredMode(*v)
	}
	return _c
}

// SetLearningStyle sets the "learning_style" field.
func (_c *LearnerProfileCreate) SetLearningStyle(v string) *LearnerProfileCreate {
	_c.mutation.SetLearningStyle(v)
	return _c
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableLearningStyle(v *string) *LearnerProfileCreate {
	if v != nil {
		_c.SetLearningStyle(*v)
	}
	return _c
}

// SetTrackedErrors sets the "tracked_errors" field.
func (_c *LearnerProfileCreate) SetTrackedErrors(v []schema.TrackedError) *LearnerProfileCreate {
	_c.mutation.SetTrackedErrors(v)
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *LearnerProfileCreate) SetSessionCount(v int) *LearnerProfileCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableSessionCount(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetSessionCount(*v)
	}
	return _c
}

// SetTotalTimeMins sets the "total_time_mins" field.
func (_c *LearnerProfileCreate) SetTotalTimeMins(v int) *LearnerProfileCreate {
	_c.mutation.SetTotalTimeMins(v)
	return _c
}

// SetNillableTotalTimeMins sets the "total_time_mins" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableTotalTimeMins(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetTotalTimeMins(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnerProfileCreate) SetCreatedAt(v time.Time) *LearnerProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableCreatedAt(v *time.Time) *LearnerProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerProfileCreate) SetUpdatedAt(v time.Time) *LearnerProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableUpdatedAt(v *time.Time) *LearnerProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_c *LearnerProfileCreate) Mutation() *LearnerProfileMutation {
	return _c.mutation
}

// Save creates the LearnerProfile in the database.
func (_c *LearnerProfileCreate) Save(ctx context.Context) (*LearnerProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerProfileCreate) SaveX(ctx context.Context) *LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerProfileCreate) defaults() {
	if _, ok := _c.mutation.PreferredMode(); !ok {
		v := learnerprofile.DefaultPreferredMode
		_c.mutation.SetPreferredMode(v)
	}
	if _, ok := _c.mutation.LearningStyle(); !ok {
		v := learnerprofile.DefaultLearningStyle
		_c.mutation.SetLearningStyle(v)
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		v := learnerprofile.DefaultSessionCount
		_c.mutation.SetSessionCount(v)
	}
	if _, ok := _c.mutation.TotalTimeMins(); !ok {
		v := learnerprofile.DefaultTotalTimeMins
		_c.mutation.SetTotalTimeMins(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learnerprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnerprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerProfileCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LearnerProfile.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := learnerprofile.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreferredMode(); !ok {
		return &ValidationError{Name: "preferred_mode", err: errors.New(`ent: missing required field "LearnerProfile.preferred_mode"`)}
	}
	if _, ok := _c.mutation.LearningStyle(); !ok {
		return &ValidationError{Name: "learning_style", err: errors.New(`ent: missing required field "LearnerProfile.learning_style"`)}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`ent: missing required field "LearnerProfile.session_count"`)}
	}
	if _, ok := _c.mutation.TotalTimeMins(); !ok {
		return &ValidationError{Name: "total_time_mins", err: errors.New(`ent: missing required field "LearnerProfile.total_time_mins"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearnerProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnerProfile.updated_at"`)}
	}
	return nil
}

func (_c *LearnerProfileCreate) sqlSave(ctx context.Context) (*LearnerProfile, error) {
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

func (_c *LearnerProfileCreate) createSpec() (*LearnerProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerprofile.Table, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(learnerprofile.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.PreferredMode(); ok {
		_spec.SetField(learnerprofile.FieldPreferredMode, field.TypeString, value)
		_node.PreferredMode = value
	}
	if value, ok := _c.mutation.LearningStyle(); ok {
		_spec.SetField(learnerprofile.FieldLearningStyle, field.TypeString, value)
		_node.LearningStyle = value
	}
	if value, ok := _c.mutation.TrackedErrors(); ok {
		_spec.SetField(learnerprofile.FieldTrackedErrors, field.TypeJSON, value)
		_node.TrackedErrors = value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(learnerprofile.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.TotalTimeMins(); ok {
		_spec.SetField(learnerprofile.FieldTotalTimeMins, field.TypeInt, value)
		_node.TotalTimeMins = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learnerprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearnerProfile.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnerProfileUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnerProfileCreate) OnConflict(opts ...sql.ConflictOption) *LearnerProfileUpsertOne {
	_c.conflict = opts
	return &LearnerProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnerProfileCreate) OnConflictColumns(columns ...string) *LearnerProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnerProfileUpsertOne{
		create: _c,
	}
}

type (
	// LearnerProfileUpsertOne is the builder for "upsert"-ing
	//  one LearnerProfile node.
	LearnerProfileUpsertOne struct {
		create *LearnerProfileCreate
	}

	// LearnerProfileUpsert is the "OnConflict" setter.
	LearnerProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetPreferredMode sets the "preferred_mode" field.
func (u *LearnerProfileUpsert) SetPreferredMode(v string) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldPreferredMode, v)
	return u
}

// UpdatePreferredMode sets the "preferred_mode" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdatePreferredMode() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldPreferredMode)
	return u
}

// SetLearningStyle sets the "learning_style" field.
func (u *LearnerProfileUpsert) SetLearningStyle(v string) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldLearningStyle, v)
	return u
}

// UpdateLearningStyle sets the "learning_style" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdateLearningStyle() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldLearningStyle)
	return u
}

// SetTrackedErrors sets the "tracked_errors" field.
func (u *LearnerProfileUpsert) SetTrackedErrors(v []schema.TrackedError) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldTrackedErrors, v)
	return u
}

// UpdateTrackedErrors sets the "tracked_errors" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdateTrackedErrors() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldTrackedErrors)
	return u
}

// ClearTrackedErrors clears the value of the "tracked_errors" field.
func (u *LearnerProfileUpsert) ClearTrackedErrors() *LearnerProfileUpsert {
	u.SetNull(learnerprofile.FieldTrackedErrors)
	return u
}

// SetSessionCount sets the "session_count" field.
func (u *LearnerProfileUpsert) SetSessionCount(v int) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldSessionCount, v)
	return u
}

// UpdateSessionCount sets the "session_count" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdateSessionCount() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldSessionCount)
	return u
}

// AddSessionCount adds v to the "session_count" field.
func (u *LearnerProfileUpsert) AddSessionCount(v int) *LearnerProfileUpsert {
	u.Add(learnerprofile.FieldSessionCount, v)
	return u
}

// SetTotalTimeMins sets the "total_time_mins" field.
func (u *LearnerProfileUpsert) SetTotalTimeMins(v int) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldTotalTimeMins, v)
	return u
}

// UpdateTotalTimeMins sets the "total_time_mins" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdateTotalTimeMins() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldTotalTimeMins)
	return u
}

// AddTotalTimeMins adds v to the "total_time_mins" field.
func (u *LearnerProfileUpsert) AddTotalTimeMins(v int) *LearnerProfileUpsert {
	u.Add(learnerprofile.FieldTotalTimeMins, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LearnerProfileUpsert) SetUpdatedAt(v time.Time) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdateUpdatedAt() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LearnerProfileUpsertOne) UpdateNewValues() *LearnerProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.LearnerID(); exists {
			s.SetIgnore(learnerprofile.FieldLearnerID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(learnerprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LearnerProfileUpsertOne) Ignore() *LearnerProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnerProfileUpsertOne) DoNothing() *LearnerProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnerProfileCreate.OnConflict
// documentation for more info.
func (u *LearnerProfileUpsertOne) Update(set func(*LearnerProfileUpsert)) *LearnerProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnerProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetPreferredMode sets the "preferred_mode" field.
func (u *LearnerProfileUpsertOne) SetPreferredMode(v string) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetPreferredMode(v)
	})
}

// UpdatePreferredMode sets the "preferred_mode" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdatePreferredMode() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdatePreferredMode()
	})
}

// SetLearningStyle sets the "learning_style" field.
func (u *LearnerProfileUpsertOne) SetLearningStyle(v string) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetLearningStyle(v)
	})
}

// UpdateLearningStyle sets the "learning_style" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdateLearningStyle() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateLearningStyle()
	})
}

// SetTrackedErrors sets the "tracked_errors" field.
func (u *LearnerProfileUpsertOne) SetTrackedErrors(v []schema.TrackedError) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetTrackedErrors(v)
	})
}

// UpdateTrackedErrors sets the "tracked_errors" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdateTrackedErrors() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateTrackedErrors()
	})
}

// ClearTrackedErrors clears the value of the "tracked_errors" field.
func (u *LearnerProfileUpsertOne) ClearTrackedErrors() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.ClearTrackedErrors()
	})
}

// SetSessionCount sets the "session_count" field.
func (u *LearnerProfileUpsertOne) SetSessionCount(v int) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetSessionCount(v)
	})
}

// AddSessionCount adds v to the "session_count" field.
func (u *LearnerProfileUpsertOne) AddSessionCount(v int) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.AddSessionCount(v)
	})
}

// UpdateSessionCount sets the "session_count" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdateSessionCount() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateSessionCount()
	})
}

// SetTotalTimeMins sets the "total_time_mins" field.
func (u *LearnerProfileUpsertOne) SetTotalTimeMins(v int) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetTotalTimeMins(v)
	})
}

// AddTotalTimeMins adds v to the "total_time_mins" field.
func (u *LearnerProfileUpsertOne) AddTotalTimeMins(v int) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.AddTotalTimeMins(v)
	})
}

// UpdateTotalTimeMins sets the "total_time_mins" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdateTotalTimeMins() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateTotalTimeMins()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LearnerProfileUpsertOne) SetUpdatedAt(v time.Time) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdateUpdatedAt() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LearnerProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnerProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnerProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LearnerProfileUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LearnerProfileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LearnerProfileCreateBulk is the builder for creating many LearnerProfile entities in bulk.
type LearnerProfileCreateBulk struct {
	config
	err      error
	builders []*LearnerProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the LearnerProfile entities in the database.
func (_c *LearnerProfileCreateBulk) Save(ctx context.Context) ([]*LearnerProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerProfileMutation)
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
func (_c *LearnerProfileCreateBulk) SaveX(ctx context.Context) []*LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearnerProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnerProfileUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnerProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *LearnerProfileUpsertBulk {
	_c.conflict = opts
	return &LearnerProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnerProfileCreateBulk) OnConflictColumns(columns ...string) *LearnerProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnerProfileUpsertBulk{
		create: _c,
	}
}

// LearnerProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of LearnerProfile nodes.
type LearnerProfileUpsertBulk struct {
	create *LearnerProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LearnerProfileUpsertBulk) UpdateNewValues() *LearnerProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.LearnerID(); exists {
				s.SetIgnore(learnerprofile.FieldLearnerID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(learnerprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LearnerProfileUpsertBulk) Ignore() *LearnerProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnerProfileUpsertBulk) DoNothing() *LearnerProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnerProfileCreateBulk.OnConflict
// documentation for more info.
func (u *LearnerProfileUpsertBulk) Update(set func(*LearnerProfileUpsert)) *LearnerProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnerProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetPreferredMode sets the "preferred_mode" field.
func (u *LearnerProfileUpsertBulk) SetPreferredMode(v string) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetPreferredMode(v)
	})
}

// UpdatePreferredMode sets the "preferred_mode" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdatePreferredMode() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdatePreferredMode()
	})
}

// SetLearningStyle sets the "learning_style" field.
func (u *LearnerProfileUpsertBulk) SetLearningStyle(v string) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetLearningStyle(v)
	})
}

// UpdateLearningStyle sets the "learning_style" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdateLearningStyle() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateLearningStyle()
	})
}

// SetTrackedErrors sets the "tracked_errors" field.
func (u *LearnerProfileUpsertBulk) SetTrackedErrors(v []schema.TrackedError) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetTrackedErrors(v)
	})
}

// UpdateTrackedErrors sets the "tracked_errors" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdateTrackedErrors() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateTrackedErrors()
	})
}

// ClearTrackedErrors clears the value of the "tracked_errors" field.
func (u *LearnerProfileUpsertBulk) ClearTrackedErrors() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.ClearTrackedErrors()
	})
}

// SetSessionCount sets the "session_count" field.
func (u *LearnerProfileUpsertBulk) SetSessionCount(v int) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetSessionCount(v)
	})
}

// AddSessionCount adds v to the "session_count" field.
func (u *LearnerProfileUpsertBulk) AddSessionCount(v int) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.AddSessionCount(v)
	})
}

// UpdateSessionCount sets the "session_count" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdateSessionCount() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateSessionCount()
	})
}

// SetTotalTimeMins sets the "total_time_mins" field.
func (u *LearnerProfileUpsertBulk) SetTotalTimeMins(v int) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetTotalTimeMins(v)
	})
}

// AddTotalTimeMins adds v to the "total_time_mins" field.
func (u *LearnerProfileUpsertBulk) AddTotalTimeMins(v int) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.AddTotalTimeMins(v)
	})
}

// UpdateTotalTimeMins sets the "total_time_mins" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdateTotalTimeMins() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateTotalTimeMins()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LearnerProfileUpsertBulk) SetUpdatedAt(v time.Time) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdateUpdatedAt() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LearnerProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LearnerProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnerProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnerProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
