// Package lessonplan generates structured, Bloom-ordered lesson plans
// for tutoring sessions. Plan generation is fatal on failure: there is
// no safe synthetic lesson plan, so errors propagate to the caller.
package lessonplan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/llm"
	"github.com/abhisek/bloomtutor/internal/store"
)

// PlanInput holds all context needed to generate a lesson plan.
type PlanInput struct {
	SessionID  string
	LearnerID  string
	Subject    string
	Topic      string
	GradeLevel string

	// PriorKnowledge is an optional signal about what the learner
	// already knows, folded into the prompt when present.
	PriorKnowledge string

	// TargetLevel is the Bloom level the plan should build toward.
	TargetLevel bloom.Level
}

// PriorKnowledgeLevel classifies how much expected knowledge a learner
// demonstrated.
type PriorKnowledgeLevel string

const (
	PriorNone    PriorKnowledgeLevel = "none"
	PriorPartial PriorKnowledgeLevel = "partial"
	PriorGood    PriorKnowledgeLevel = "good"
)

// PriorKnowledgeAssessment is the result of assessing a learner's
// response to a prior-knowledge check.
type PriorKnowledgeAssessment struct {
	Level    PriorKnowledgeLevel
	Gaps     []string
	NextStep string
}

// Planner generates lesson plans via the text-generation provider.
type Planner struct {
	provider llm.Provider
	cfg      Config
}

// NewPlanner creates a lesson planner.
func NewPlanner(provider llm.Provider, cfg Config) *Planner {
	return &Planner{provider: provider, cfg: cfg}
}

type planOutput struct {
	Goals      []string         `json:"goals"`
	PriorCheck string           `json:"prior_check"`
	Steps      []planStepOutput `json:"steps"`
	Resources  []string         `json:"resources"`
}

type planStepOutput struct {
	Type             string   `json:"type"`
	Content          string   `json:"content"`
	BloomLevel       string   `json:"bloom_level"`
	Checkpoints      []string `json:"checkpoints"`
	EstimatedMinutes int      `json:"estimated_minutes"`
}

// CreatePlan generates a new lesson plan. It does not persist anything:
// the orchestrator owns the idempotent create-if-absent write so that a
// plan is generated at most once per session.
func (p *Planner) CreatePlan(ctx context.Context, in PlanInput) (*store.LessonPlan, error) {
	ctx = llm.WithPurpose(ctx, "lesson-plan")

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(in)},
		},
		Schema:      PlanSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("lesson plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson plan response: %w", err)
	}

	if err := validatePlanShape(out); err != nil {
		return nil, fmt.Errorf("invalid lesson plan: %w", err)
	}

	plan := &store.LessonPlan{
		SessionID:  in.SessionID,
		LearnerID:  in.LearnerID,
		Subject:    in.Subject,
		Topic:      in.Topic,
		GradeLevel: in.GradeLevel,
		Goals:      out.Goals,
		PriorCheck: out.PriorCheck,
		Resources:  out.Resources,
	}
	for _, s := range out.Steps {
		step := store.LessonStep{
			Type:             s.Type,
			Content:          s.Content,
			BloomLevel:       bloom.Parse(s.BloomLevel),
			Checkpoints:      s.Checkpoints,
			EstimatedMinutes: s.EstimatedMinutes,
		}
		plan.Steps = append(plan.Steps, step)
		plan.TotalMinutes += s.EstimatedMinutes
	}
	return plan, nil
}

// validStepTypes for shape validation.
var validStepTypes = map[string]bool{
	"explain": true, "example": true, "practice": true, "reflection": true, "probe": true,
}

func validatePlanShape(out planOutput) error {
	if len(out.Goals) < minGoals || len(out.Goals) > maxGoals {
		return fmt.Errorf("expected %d-%d goals, got %d", minGoals, maxGoals, len(out.Goals))
	}
	if out.PriorCheck == "" {
		return fmt.Errorf("missing prior-knowledge check question")
	}
	if len(out.Steps) < minSteps || len(out.Steps) > maxSteps {
		return fmt.Errorf("expected %d-%d steps, got %d", minSteps, maxSteps, len(out.Steps))
	}
	for i, s := range out.Steps {
		if !validStepTypes[s.Type] {
			return fmt.Errorf("step %d has unknown type %q", i+1, s.Type)
		}
		if s.Content == "" {
			return fmt.Errorf("step %d has empty content", i+1)
		}
		if !bloom.Valid(bloom.Level(s.BloomLevel)) {
			return fmt.Errorf("step %d has unknown bloom level %q", i+1, s.BloomLevel)
		}
	}
	return nil
}

// AssessPriorKnowledge classifies what a learner's response to the
// prior-knowledge check demonstrates. Unlike CreatePlan this call is
// best-effort: on failure it returns a conservative default rather than
// an error, so the lesson can still start from the basics.
func (p *Planner) AssessPriorKnowledge(ctx context.Context, studentResponse, expectedKnowledge string) PriorKnowledgeAssessment {
	ctx = llm.WithPurpose(ctx, "prior-knowledge")

	safe := PriorKnowledgeAssessment{
		Level:    PriorNone,
		Gaps:     []string{"unable to assess gaps"},
		NextStep: "start from the basics",
	}

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: priorKnowledgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPriorKnowledgeUserMessage(studentResponse, expectedKnowledge)},
		},
		Schema:      PriorKnowledgeSchema,
		MaxTokens:   512,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return safe
	}

	var out struct {
		Level    string   `json:"level"`
		Gaps     []string `json:"gaps"`
		NextStep string   `json:"next_step"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return safe
	}

	lvl := PriorKnowledgeLevel(out.Level)
	switch lvl {
	case PriorNone, PriorPartial, PriorGood:
	default:
		return safe
	}
	return PriorKnowledgeAssessment{Level: lvl, Gaps: out.Gaps, NextStep: out.NextStep}
}
