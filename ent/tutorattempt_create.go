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
	"github.com/abhisek/bloomtutor/ent/tutorattempt"
)

// TutorAttemptCreate is the builder for creating a TutorAttempt entity.
type TutorAttemptCreate struct {
	config
	mutation *TutorAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *TutorAttemptCreate) SetSequence(v int64) *TutorAttemptCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TutorAttemptCreate) SetTimestamp(v time.Time) *TutorAttemptCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TutorAttemptCreate) SetNillableTimestamp(v *time.Time) *TutorAttemptCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TutorAttemptCreate) SetSessionID(v string) *TutorAttemptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *TutorAttemptCreate) SetLearnerID(v string) *TutorAttemptCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *TutorAttemptCreate) SetSubject(v string) *TutorAttemptCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TutorAttemptCreate) SetTopic(v string) *TutorAttemptCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetBloomLevel sets the "bloom_level" field.
func (_c *TutorAttemptCreate) SetBloomLevel(v string) *TutorAttemptCreate {
	_c.mutation.SetBloomLevel(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *TutorAttemptCreate) SetQuestion(v string) *TutorAttemptCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *TutorAttemptCreate) SetAnswer(v string) *TutorAttemptCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *TutorAttemptCreate) SetCorrect(v bool) *TutorAttemptCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TutorAttemptCreate) SetConfidence(v float64) *TutorAttemptCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TutorAttemptCreate) SetNillableConfidence(v *float64) *TutorAttemptCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *TutorAttemptCreate) SetFeedback(v string) *TutorAttemptCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *TutorAttemptCreate) SetNillableFeedback(v *string) *TutorAttemptCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_c *TutorAttemptCreate) SetTimeSpentMs(v int) *TutorAttemptCreate {
	_c.mutation.SetTimeSpentMs(v)
	return _c
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_c *TutorAttemptCreate) SetNillableTimeSpentMs(v *int) *TutorAttemptCreate {
	if v != nil {
		_c.SetTimeSpentMs(*v)
	}
	return _c
}

// Mutation returns the TutorAttemptMutation object of the builder.
func (_c *TutorAttemptCreate) Mutation() *TutorAttemptMutation {
	return _c.mutation
}

// Save creates the TutorAttempt in the database.
func (_c *TutorAttemptCreate) Save(ctx context.Context) (*TutorAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorAttemptCreate) SaveX(ctx context.Context) *TutorAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorAttemptCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := tutorattempt.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := tutorattempt.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := tutorattempt.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		v := tutorattempt.DefaultTimeSpentMs
		_c.mutation.SetTimeSpentMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorAttemptCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TutorAttempt.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TutorAttempt.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TutorAttempt.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := tutorattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "TutorAttempt.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := tutorattempt.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "TutorAttempt.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := tutorattempt.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TutorAttempt.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := tutorattempt.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BloomLevel(); !ok {
		return &ValidationError{Name: "bloom_level", err: errors.New(`ent: missing required field "TutorAttempt.bloom_level"`)}
	}
	if v, ok := _c.mutation.BloomLevel(); ok {
		if err := tutorattempt.BloomLevelValidator(v); err != nil {
			return &ValidationError{Name: "bloom_level", err: fmt.Errorf(`ent: validator failed for field "TutorAttempt.bloom_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "TutorAttempt.question"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "TutorAttempt.answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "TutorAttempt.correct"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "TutorAttempt.confidence"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "TutorAttempt.feedback"`)}
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		return &ValidationError{Name: "time_spent_ms", err: errors.New(`ent: missing required field "TutorAttempt.time_spent_ms"`)}
	}
	return nil
}

func (_c *TutorAttemptCreate) sqlSave(ctx context.Context) (*TutorAttempt, error) {
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

func (_c *TutorAttemptCreate) createSpec() (*TutorAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorattempt.Table, sqlgraph.NewFieldSpec(tutorattempt.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(tutorattempt.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(tutorattempt.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(tutorattempt.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(tutorattempt.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(tutorattempt.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(tutorattempt.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.BloomLevel(); ok {
		_spec.SetField(tutorattempt.FieldBloomLevel, field.TypeString, value)
		_node.BloomLevel = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(tutorattempt.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(tutorattempt.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(tutorattempt.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(tutorattempt.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(tutorattempt.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.TimeSpentMs(); ok {
		_spec.SetField(tutorattempt.FieldTimeSpentMs, field.TypeInt, value)
		_node.TimeSpentMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TutorAttempt.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TutorAttemptUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *TutorAttemptCreate) OnConflict(opts ...sql.ConflictOption) *TutorAttemptUpsertOne {
	_c.conflict = opts
	return &TutorAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TutorAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TutorAttemptCreate) OnConflictColumns(columns ...string) *TutorAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TutorAttemptUpsertOne{
		create: _c,
	}
}

type (
	// TutorAttemptUpsertOne is the builder for "upsert"-ing
	//  one TutorAttempt node.
	TutorAttemptUpsertOne struct {
		create *TutorAttemptCreate
	}

	// TutorAttemptUpsert is the "OnConflict" setter.
	TutorAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *TutorAttemptUpsert) SetSessionID(v string) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateSessionID() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldSessionID)
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *TutorAttemptUpsert) SetLearnerID(v string) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateLearnerID() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldLearnerID)
	return u
}

// SetSubject sets the "subject" field.
func (u *TutorAttemptUpsert) SetSubject(v string) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateSubject() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldSubject)
	return u
}

// SetTopic sets the "topic" field.
func (u *TutorAttemptUpsert) SetTopic(v string) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateTopic() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldTopic)
	return u
}

// SetBloomLevel sets the "bloom_level" field.
func (u *TutorAttemptUpsert) SetBloomLevel(v string) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldBloomLevel, v)
	return u
}

// UpdateBloomLevel sets the "bloom_level" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateBloomLevel() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldBloomLevel)
	return u
}

// SetQuestion sets the "question" field.
func (u *TutorAttemptUpsert) SetQuestion(v string) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateQuestion() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldQuestion)
	return u
}

// SetAnswer sets the "answer" field.
func (u *TutorAttemptUpsert) SetAnswer(v string) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateAnswer() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldAnswer)
	return u
}

// SetCorrect sets the "correct" field.
func (u *TutorAttemptUpsert) SetCorrect(v bool) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateCorrect() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldCorrect)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *TutorAttemptUpsert) SetConfidence(v float64) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateConfidence() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *TutorAttemptUpsert) AddConfidence(v float64) *TutorAttemptUpsert {
	u.Add(tutorattempt.FieldConfidence, v)
	return u
}

// SetFeedback sets the "feedback" field.
func (u *TutorAttemptUpsert) SetFeedback(v string) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldFeedback, v)
	return u
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateFeedback() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldFeedback)
	return u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (u *TutorAttemptUpsert) SetTimeSpentMs(v int) *TutorAttemptUpsert {
	u.Set(tutorattempt.FieldTimeSpentMs, v)
	return u
}

// UpdateTimeSpentMs sets the "time_spent_ms" field to the value that was provided on create.
func (u *TutorAttemptUpsert) UpdateTimeSpentMs() *TutorAttemptUpsert {
	u.SetExcluded(tutorattempt.FieldTimeSpentMs)
	return u
}

// AddTimeSpentMs adds v to the "time_spent_ms" field.
func (u *TutorAttemptUpsert) AddTimeSpentMs(v int) *TutorAttemptUpsert {
	u.Add(tutorattempt.FieldTimeSpentMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TutorAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TutorAttemptUpsertOne) UpdateNewValues() *TutorAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(tutorattempt.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(tutorattempt.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TutorAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TutorAttemptUpsertOne) Ignore() *TutorAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TutorAttemptUpsertOne) DoNothing() *TutorAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TutorAttemptCreate.OnConflict
// documentation for more info.
func (u *TutorAttemptUpsertOne) Update(set func(*TutorAttemptUpsert)) *TutorAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TutorAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TutorAttemptUpsertOne) SetSessionID(v string) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateSessionID() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateSessionID()
	})
}

// SetLearnerID sets the "learner_id" field.
func (u *TutorAttemptUpsertOne) SetLearnerID(v string) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateLearnerID() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSubject sets the "subject" field.
func (u *TutorAttemptUpsertOne) SetSubject(v string) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateSubject() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateSubject()
	})
}

// SetTopic sets the "topic" field.
func (u *TutorAttemptUpsertOne) SetTopic(v string) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateTopic() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateTopic()
	})
}

// SetBloomLevel sets the "bloom_level" field.
func (u *TutorAttemptUpsertOne) SetBloomLevel(v string) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetBloomLevel(v)
	})
}

// UpdateBloomLevel sets the "bloom_level" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateBloomLevel() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateBloomLevel()
	})
}

// SetQuestion sets the "question" field.
func (u *TutorAttemptUpsertOne) SetQuestion(v string) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateQuestion() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateQuestion()
	})
}

// SetAnswer sets the "answer" field.
func (u *TutorAttemptUpsertOne) SetAnswer(v string) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateAnswer() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateAnswer()
	})
}

// SetCorrect sets the "correct" field.
func (u *TutorAttemptUpsertOne) SetCorrect(v bool) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateCorrect() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateCorrect()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TutorAttemptUpsertOne) SetConfidence(v float64) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TutorAttemptUpsertOne) AddConfidence(v float64) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateConfidence() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateConfidence()
	})
}

// SetFeedback sets the "feedback" field.
func (u *TutorAttemptUpsertOne) SetFeedback(v string) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateFeedback() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateFeedback()
	})
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (u *TutorAttemptUpsertOne) SetTimeSpentMs(v int) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetTimeSpentMs(v)
	})
}

// AddTimeSpentMs adds v to the "time_spent_ms" field.
func (u *TutorAttemptUpsertOne) AddTimeSpentMs(v int) *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.AddTimeSpentMs(v)
	})
}

// UpdateTimeSpentMs sets the "time_spent_ms" field to the value that was provided on create.
func (u *TutorAttemptUpsertOne) UpdateTimeSpentMs() *TutorAttemptUpsertOne {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateTimeSpentMs()
	})
}

// Exec executes the query.
func (u *TutorAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TutorAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TutorAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TutorAttemptUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TutorAttemptUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TutorAttemptCreateBulk is the builder for creating many TutorAttempt entities in bulk.
type TutorAttemptCreateBulk struct {
	config
	err      error
	builders []*TutorAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the TutorAttempt entities in the database.
func (_c *TutorAttemptCreateBulk) Save(ctx context.Context) ([]*TutorAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorAttemptMutation)
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
func (_c *TutorAttemptCreateBulk) SaveX(ctx context.Context) []*TutorAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TutorAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TutorAttemptUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *TutorAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *TutorAttemptUpsertBulk {
	_c.conflict = opts
	return &TutorAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TutorAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TutorAttemptCreateBulk) OnConflictColumns(columns ...string) *TutorAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TutorAttemptUpsertBulk{
		create: _c,
	}
}

// TutorAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of TutorAttempt nodes.
type TutorAttemptUpsertBulk struct {
	create *TutorAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TutorAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TutorAttemptUpsertBulk) UpdateNewValues() *TutorAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(tutorattempt.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(tutorattempt.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TutorAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TutorAttemptUpsertBulk) Ignore() *TutorAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TutorAttemptUpsertBulk) DoNothing() *TutorAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TutorAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *TutorAttemptUpsertBulk) Update(set func(*TutorAttemptUpsert)) *TutorAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TutorAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TutorAttemptUpsertBulk) SetSessionID(v string) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateSessionID() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateSessionID()
	})
}

// SetLearnerID sets the "learner_id" field.
func (u *TutorAttemptUpsertBulk) SetLearnerID(v string) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateLearnerID() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSubject sets the "subject" field.
func (u *TutorAttemptUpsertBulk) SetSubject(v string) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateSubject() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateSubject()
	})
}

// SetTopic sets the "topic" field.
func (u *TutorAttemptUpsertBulk) SetTopic(v string) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateTopic() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateTopic()
	})
}

// SetBloomLevel sets the "bloom_level" field.
func (u *TutorAttemptUpsertBulk) SetBloomLevel(v string) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetBloomLevel(v)
	})
}

// UpdateBloomLevel sets the "bloom_level" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateBloomLevel() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateBloomLevel()
	})
}

// SetQuestion sets the "question" field.
func (u *TutorAttemptUpsertBulk) SetQuestion(v string) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateQuestion() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateQuestion()
	})
}

// SetAnswer sets the "answer" field.
func (u *TutorAttemptUpsertBulk) SetAnswer(v string) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateAnswer() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateAnswer()
	})
}

// SetCorrect sets the "correct" field.
func (u *TutorAttemptUpsertBulk) SetCorrect(v bool) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateCorrect() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateCorrect()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TutorAttemptUpsertBulk) SetConfidence(v float64) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TutorAttemptUpsertBulk) AddConfidence(v float64) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateConfidence() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateConfidence()
	})
}

// SetFeedback sets the "feedback" field.
func (u *TutorAttemptUpsertBulk) SetFeedback(v string) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateFeedback() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateFeedback()
	})
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (u *TutorAttemptUpsertBulk) SetTimeSpentMs(v int) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.SetTimeSpentMs(v)
	})
}

// AddTimeSpentMs adds v to the "time_spent_ms" field.
func (u *TutorAttemptUpsertBulk) AddTimeSpentMs(v int) *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.AddTimeSpentMs(v)
	})
}

// UpdateTimeSpentMs sets the "time_spent_ms" field to the value that was provided on create.
func (u *TutorAttemptUpsertBulk) UpdateTimeSpentMs() *TutorAttemptUpsertBulk {
	return u.Update(func(s *TutorAttemptUpsert) {
		s.UpdateTimeSpentMs()
	})
}

// Exec executes the query.
func (u *TutorAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TutorAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TutorAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TutorAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
