package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TutorAttempt is the append-only log of one graded answer.
// Rows are never mutated after creation.
type TutorAttempt struct {
	ent.Schema
}

func (TutorAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TutorAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("learner_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("bloom_level").NotEmpty(),
		field.String("question"),
		field.String("answer"),
		field.Bool("correct"),
		field.Float("confidence").
			Default(0),
		field.String("feedback").
			Default(""),
		field.Int("time_spent_ms").
			Default(0),
	}
}

func (TutorAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id", "subject", "topic"),
	}
}
