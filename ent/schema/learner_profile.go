package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerProfile holds per-learner tutoring preferences and history.
// Created lazily on the learner's first turn; never deleted.
type LearnerProfile struct {
	ent.Schema
}

// TrackedError is one entry in the learner's bounded error history.
type TrackedError struct {
	Type      string    `json:"type"`
	Context   string    `json:"context"`
	Timestamp time.Time `json:"timestamp"`
}

func (LearnerProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("preferred_mode").
			Default("socratic").
			Comment("Preferred tutoring mode: socratic, direct, mixed"),
		field.String("learning_style").
			Default("").
			Comment("Optional learning-style tag"),
		field.JSON("tracked_errors", []TrackedError{}).
			Optional().
			Comment("Ring buffer of the last 50 tracked errors"),
		field.Int("session_count").
			Default(0),
		field.Int("total_time_mins").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearnerProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id").Unique(),
	}
}
