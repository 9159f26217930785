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
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *MasteryRecordCreate) SetLearnerID(v string) *MasteryRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *MasteryRecordCreate) SetSubject(v string) *MasteryRecordCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *MasteryRecordCreate) SetTopic(v string) *MasteryRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetBloomLevel sets the "bloom_level" field.
func (_c *MasteryRecordCreate) SetBloomLevel(v string) *MasteryRecordCreate {
	_c.mutation.SetBloomLevel(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MasteryRecordCreate) SetScore(v float64) *MasteryRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableScore(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *MasteryRecordCreate) SetAttempts(v int) *MasteryRecordCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableAttempts(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *MasteryRecordCreate) SetCorrectCount(v int) *MasteryRecordCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableCorrectCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_c *MasteryRecordCreate) SetIncorrectCount(v int) *MasteryRecordCreate {
	_c.mutation.SetIncorrectCount(v)
	return _c
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableIncorrectCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetIncorrectCount(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *MasteryRecordCreate) SetLastPracticedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := masteryrecord.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := masteryrecord.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := masteryrecord.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		v := masteryrecord.DefaultIncorrectCount
		_c.mutation.SetIncorrectCount(v)
	}
	if _, ok := _c.mutation.LastPracticedAt(); !ok {
		v := masteryrecord.DefaultLastPracticedAt()
		_c.mutation.SetLastPracticedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MasteryRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "MasteryRecord.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := masteryrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "MasteryRecord.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := masteryrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BloomLevel(); !ok {
		return &ValidationError{Name: "bloom_level", err: errors.New(`ent: missing required field "MasteryRecord.bloom_level"`)}
	}
	if v, ok := _c.mutation.BloomLevel(); ok {
		if err := masteryrecord.BloomLevelValidator(v); err != nil {
			return &ValidationError{Name: "bloom_level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.bloom_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "MasteryRecord.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := masteryrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "MasteryRecord.attempts"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "MasteryRecord.correct_count"`)}
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "MasteryRecord.incorrect_count"`)}
	}
	if _, ok := _c.mutation.LastPracticedAt(); !ok {
		return &ValidationError{Name: "last_practiced_at", err: errors.New(`ent: missing required field "MasteryRecord.last_practiced_at"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(masteryrecord.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(masteryrecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.BloomLevel(); ok {
		_spec.SetField(masteryrecord.FieldBloomLevel, field.TypeString, value)
		_node.BloomLevel = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(masteryrecord.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.IncorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryRecordCreate) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertOne {
	_c.conflict = opts
	return &MasteryRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryRecordCreate) OnConflictColumns(columns ...string) *MasteryRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertOne{
		create: _c,
	}
}

type (
	// MasteryRecordUpsertOne is the builder for "upsert"-ing
	//  one MasteryRecord node.
	MasteryRecordUpsertOne struct {
		create *MasteryRecordCreate
	}

	// MasteryRecordUpsert is the "OnConflict" setter.
	MasteryRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *MasteryRecordUpsert) SetLearnerID(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateLearnerID() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldLearnerID)
	return u
}

// SetSubject sets the "subject" field.
func (u *MasteryRecordUpsert) SetSubject(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateSubject() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldSubject)
	return u
}

// SetTopic sets the "topic" field.
func (u *MasteryRecordUpsert) SetTopic(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateTopic() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldTopic)
	return u
}

// SetBloomLevel sets the "bloom_level" field.
func (u *MasteryRecordUpsert) SetBloomLevel(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldBloomLevel, v)
	return u
}

// UpdateBloomLevel sets the "bloom_level" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateBloomLevel() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldBloomLevel)
	return u
}

// SetScore sets the "score" field.
func (u *MasteryRecordUpsert) SetScore(v float64) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateScore() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *MasteryRecordUpsert) AddScore(v float64) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldScore, v)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *MasteryRecordUpsert) SetAttempts(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateAttempts() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *MasteryRecordUpsert) AddAttempts(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldAttempts, v)
	return u
}

// SetCorrectCount sets the "correct_count" field.
func (u *MasteryRecordUpsert) SetCorrectCount(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldCorrectCount, v)
	return u
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateCorrectCount() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldCorrectCount)
	return u
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *MasteryRecordUpsert) AddCorrectCount(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldCorrectCount, v)
	return u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (u *MasteryRecordUpsert) SetIncorrectCount(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldIncorrectCount, v)
	return u
}

// UpdateIncorrectCount sets the "incorrect_count" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateIncorrectCount() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldIncorrectCount)
	return u
}

// AddIncorrectCount adds v to the "incorrect_count" field.
func (u *MasteryRecordUpsert) AddIncorrectCount(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldIncorrectCount, v)
	return u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *MasteryRecordUpsert) SetLastPracticedAt(v time.Time) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldLastPracticedAt, v)
	return u
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateLastPracticedAt() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldLastPracticedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertOne) UpdateNewValues() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MasteryRecordUpsertOne) Ignore() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertOne) DoNothing() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreate.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertOne) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *MasteryRecordUpsertOne) SetLearnerID(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateLearnerID() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSubject sets the "subject" field.
func (u *MasteryRecordUpsertOne) SetSubject(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateSubject() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateSubject()
	})
}

// SetTopic sets the "topic" field.
func (u *MasteryRecordUpsertOne) SetTopic(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateTopic() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateTopic()
	})
}

// SetBloomLevel sets the "bloom_level" field.
func (u *MasteryRecordUpsertOne) SetBloomLevel(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetBloomLevel(v)
	})
}

// UpdateBloomLevel sets the "bloom_level" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateBloomLevel() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateBloomLevel()
	})
}

// SetScore sets the "score" field.
func (u *MasteryRecordUpsertOne) SetScore(v float64) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *MasteryRecordUpsertOne) AddScore(v float64) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateScore() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateScore()
	})
}

// SetAttempts sets the "attempts" field.
func (u *MasteryRecordUpsertOne) SetAttempts(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *MasteryRecordUpsertOne) AddAttempts(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateAttempts() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateAttempts()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *MasteryRecordUpsertOne) SetCorrectCount(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *MasteryRecordUpsertOne) AddCorrectCount(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateCorrectCount() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetIncorrectCount sets the "incorrect_count" field.
func (u *MasteryRecordUpsertOne) SetIncorrectCount(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetIncorrectCount(v)
	})
}

// AddIncorrectCount adds v to the "incorrect_count" field.
func (u *MasteryRecordUpsertOne) AddIncorrectCount(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddIncorrectCount(v)
	})
}

// UpdateIncorrectCount sets the "incorrect_count" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateIncorrectCount() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateIncorrectCount()
	})
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *MasteryRecordUpsertOne) SetLastPracticedAt(v time.Time) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLastPracticedAt(v)
	})
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateLastPracticedAt() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLastPracticedAt()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MasteryRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertBulk {
	_c.conflict = opts
	return &MasteryRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryRecordCreateBulk) OnConflictColumns(columns ...string) *MasteryRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertBulk{
		create: _c,
	}
}

// MasteryRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of MasteryRecord nodes.
type MasteryRecordUpsertBulk struct {
	create *MasteryRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) UpdateNewValues() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) Ignore() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertBulk) DoNothing() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreateBulk.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertBulk) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *MasteryRecordUpsertBulk) SetLearnerID(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateLearnerID() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSubject sets the "subject" field.
func (u *MasteryRecordUpsertBulk) SetSubject(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateSubject() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateSubject()
	})
}

// SetTopic sets the "topic" field.
func (u *MasteryRecordUpsertBulk) SetTopic(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateTopic() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateTopic()
	})
}

// SetBloomLevel sets the "bloom_level" field.
func (u *MasteryRecordUpsertBulk) SetBloomLevel(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetBloomLevel(v)
	})
}

// UpdateBloomLevel sets the "bloom_level" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateBloomLevel() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateBloomLevel()
	})
}

// SetScore sets the "score" field.
func (u *MasteryRecordUpsertBulk) SetScore(v float64) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *MasteryRecordUpsertBulk) AddScore(v float64) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateScore() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateScore()
	})
}

// SetAttempts sets the "attempts" field.
func (u *MasteryRecordUpsertBulk) SetAttempts(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *MasteryRecordUpsertBulk) AddAttempts(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateAttempts() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateAttempts()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *MasteryRecordUpsertBulk) SetCorrectCount(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *MasteryRecordUpsertBulk) AddCorrectCount(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateCorrectCount() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetIncorrectCount sets the "incorrect_count" field.
func (u *MasteryRecordUpsertBulk) SetIncorrectCount(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetIncorrectCount(v)
	})
}

// AddIncorrectCount adds v to the "incorrect_count" field.
func (u *MasteryRecordUpsertBulk) AddIncorrectCount(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddIncorrectCount(v)
	})
}

// UpdateIncorrectCount sets the "incorrect_count" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateIncorrectCount() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateIncorrectCount()
	})
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *MasteryRecordUpsertBulk) SetLastPracticedAt(v time.Time) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLastPracticedAt(v)
	})
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateLastPracticedAt() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLastPracticedAt()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MasteryRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
