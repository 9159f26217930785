package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message is one turn in a session's conversation log. The shared sequence
// from EventMixin gives a strict total order across all sessions, so
// "last N turns" queries never depend on wall-clock tie-breaking.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("role").
			NotEmpty().
			Comment("tutor or learner"),
		field.Text("content"),
		field.String("message_type").
			Default("").
			Comment("lesson_plan, socratic_probe, feedback, admin, ..."),
		field.Bool("awaiting_answer").
			Default(false).
			Comment("Tutor message that poses a question still open for an answer"),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "role"),
	}
}
