package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord tracks demonstrated mastery for one learner at one
// Bloom level of one (subject, topic). Exactly one row per key.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("bloom_level").
			NotEmpty().
			Comment("remember, understand, apply, analyze, evaluate, create"),
		field.Float("score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Blended mastery score, 0-100"),
		field.Int("attempts").
			Default(0).
			Comment("Monotonic attempt counter"),
		field.Int("correct_count").
			Default(0),
		field.Int("incorrect_count").
			Default(0),
		field.Time("last_practiced_at").
			Default(time.Now),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "subject", "topic", "bloom_level").Unique(),
		index.Fields("learner_id", "subject", "topic"),
	}
}
