package lessonplan

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/llm"
)

const validPlanJSON = `{
	"goals": ["Recall the definition of a fraction", "Compare fractions with like denominators"],
	"prior_check": "What does the bottom number of a fraction tell you?",
	"steps": [
		{"type": "explain", "content": "A fraction names equal parts of a whole.", "bloom_level": "remember", "checkpoints": ["Can state the definition"], "estimated_minutes": 5},
		{"type": "example", "content": "Walk through 3/4 of a pizza.", "bloom_level": "understand", "checkpoints": ["Identifies numerator and denominator"], "estimated_minutes": 5},
		{"type": "practice", "content": "Shade 2/5 of a grid.", "bloom_level": "apply", "checkpoints": ["Shades correctly"], "estimated_minutes": 10},
		{"type": "reflection", "content": "Explain when two fractions are equal.", "bloom_level": "analyze", "checkpoints": ["Gives a valid comparison"], "estimated_minutes": 5}
	],
	"resources": ["fraction strips"]
}`

func planInput() PlanInput {
	return PlanInput{
		SessionID:   "sess-1",
		LearnerID:   "learner-1",
		Subject:     "math",
		Topic:       "fractions",
		GradeLevel:  "4",
		TargetLevel: bloom.Analyze,
	}
}

func TestCreatePlanParsesAndSums(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validPlanJSON)})
	p := NewPlanner(mock, DefaultConfig())

	plan, err := p.CreatePlan(context.Background(), planInput())
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	if plan.SessionID != "sess-1" || plan.LearnerID != "learner-1" {
		t.Errorf("identity fields not carried: %+v", plan)
	}
	if len(plan.Goals) != 2 {
		t.Errorf("goals = %d, want 2", len(plan.Goals))
	}
	if plan.PriorCheck == "" {
		t.Error("missing prior check")
	}
	if len(plan.Steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(plan.Steps))
	}
	if plan.Steps[2].BloomLevel != bloom.Apply {
		t.Errorf("step 3 level = %s, want apply", plan.Steps[2].BloomLevel)
	}
	if plan.TotalMinutes != 25 {
		t.Errorf("total minutes = %d, want 25", plan.TotalMinutes)
	}
}

func TestCreatePlanPromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validPlanJSON)})
	p := NewPlanner(mock, DefaultConfig())

	if _, err := p.CreatePlan(context.Background(), planInput()); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != PlanSchema {
		t.Error("plan schema not attached to request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"fractions", "math", "analyze"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestCreatePlanShapeValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*planOutput)
		wantErr string
	}{
		{
			name:    "too few goals",
			mutate:  func(o *planOutput) { o.Goals = o.Goals[:1] },
			wantErr: "goals",
		},
		{
			name:    "too few steps",
			mutate:  func(o *planOutput) { o.Steps = o.Steps[:3] },
			wantErr: "steps",
		},
		{
			name:    "missing prior check",
			mutate:  func(o *planOutput) { o.PriorCheck = "" },
			wantErr: "prior-knowledge",
		},
		{
			name:    "unknown step type",
			mutate:  func(o *planOutput) { o.Steps[0].Type = "lecture" },
			wantErr: "unknown type",
		},
		{
			name:    "empty step content",
			mutate:  func(o *planOutput) { o.Steps[1].Content = "" },
			wantErr: "empty content",
		},
		{
			name:    "unknown bloom level",
			mutate:  func(o *planOutput) { o.Steps[0].BloomLevel = "memorize" },
			wantErr: "bloom level",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out planOutput
			if err := json.Unmarshal([]byte(validPlanJSON), &out); err != nil {
				t.Fatalf("unmarshal fixture: %v", err)
			}
			tc.mutate(&out)
			raw, _ := json.Marshal(out)

			mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
			p := NewPlanner(mock, DefaultConfig())

			_, err := p.CreatePlan(context.Background(), planInput())
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestCreatePlanProviderErrorIsFatal(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider unavailable
	p := NewPlanner(mock, DefaultConfig())

	if _, err := p.CreatePlan(context.Background(), planInput()); err == nil {
		t.Fatal("expected error when provider fails")
	}
}

func TestAssessPriorKnowledge(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"level": "partial", "gaps": ["equivalent fractions"], "next_step": "review equivalence with models"}`),
	})
	p := NewPlanner(mock, DefaultConfig())

	got := p.AssessPriorKnowledge(context.Background(), "The bottom number is how many parts", "parts of a whole, equivalence")
	if got.Level != PriorPartial {
		t.Errorf("level = %s, want partial", got.Level)
	}
	if len(got.Gaps) != 1 || got.Gaps[0] != "equivalent fractions" {
		t.Errorf("gaps = %v", got.Gaps)
	}
	if got.NextStep == "" {
		t.Error("missing next step")
	}
}

func TestAssessPriorKnowledgeSafeDefault(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"malformed json", llm.MockResponse{Content: json.RawMessage(`not json`)}},
		{"unknown level", llm.MockResponse{Content: json.RawMessage(`{"level": "expert", "gaps": [], "next_step": "x"}`)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tc.resp)
			p := NewPlanner(mock, DefaultConfig())

			got := p.AssessPriorKnowledge(context.Background(), "um", "anything")
			if got.Level != PriorNone {
				t.Errorf("level = %s, want none", got.Level)
			}
			if got.NextStep != "start from the basics" {
				t.Errorf("next step = %q", got.NextStep)
			}
		})
	}
}
