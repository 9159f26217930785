package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonPlan is the structured multi-step plan for one tutoring session.
// At most one row per session; creation uses a conflict-ignore upsert so
// concurrent turns can never produce two plans.
type LessonPlan struct {
	ent.Schema
}

// LessonStepData is the serialized form of a single plan step.
type LessonStepData struct {
	Type             string   `json:"type"`
	Content          string   `json:"content"`
	BloomLevel       string   `json:"bloom_level"`
	Checkpoints      []string `json:"checkpoints"`
	EstimatedMinutes int      `json:"estimated_minutes"`
}

func (LessonPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("learner_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("grade_level").Default(""),
		field.JSON("goals", []string{}).
			Comment("2-4 learning goals"),
		field.String("prior_check").
			Default("").
			Comment("Prior-knowledge check question"),
		field.JSON("steps", []LessonStepData{}).
			Comment("Ordered Bloom-progressing lesson steps"),
		field.JSON("resources", []string{}).
			Optional(),
		field.Int("total_minutes").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LessonPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
