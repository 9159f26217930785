package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/llm"
)

const validFeedbackJSON = `{
	"task": "You set up the fraction correctly but flipped numerator and denominator.",
	"process": "You counted parts before wholes, which is the right order; keep the eaten count on top.",
	"self_regulation": "After writing a fraction, re-read it aloud as 'parts out of total' to catch flips.",
	"next_step": "Redo the pizza problem writing the eaten slices first.",
	"retrieval_prompt": "What does the top number of a fraction count?",
	"encouragement": "Your setup was solid, this is a small fix."
}`

func feedbackInput() Input {
	return Input{
		Question:       "What fraction of the pizza is eaten?",
		LearnerAnswer:  "8/3",
		ExpectedAnswer: "3/8",
		Correct:        false,
		BloomLevel:     bloom.Apply,
	}
}

func TestGenerateFeedbackParsesAllLayers(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validFeedbackJSON)})
	e := NewEngine(mock)

	rec, err := e.GenerateFeedback(context.Background(), feedbackInput())
	if err != nil {
		t.Fatalf("GenerateFeedback: %v", err)
	}
	if rec.Task == "" || rec.Process == "" || rec.SelfRegulation == "" {
		t.Errorf("missing a feedback layer: %+v", rec)
	}
	if rec.NextStep == "" || rec.RetrievalPrompt == "" || rec.Encouragement == "" {
		t.Errorf("missing a supplement field: %+v", rec)
	}
	if rec.BloomLevel != bloom.Apply {
		t.Errorf("bloom level = %s, want apply", rec.BloomLevel)
	}
}

func TestGenerateFeedbackPromptCarriesGrade(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validFeedbackJSON)})
	e := NewEngine(mock)

	if _, err := e.GenerateFeedback(context.Background(), feedbackInput()); err != nil {
		t.Fatalf("GenerateFeedback: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "incorrect") {
		t.Errorf("prompt should state the grade:\n%s", msg)
	}
}

func TestGenerateFeedbackFailuresAreFatal(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"malformed json", llm.MockResponse{Content: json.RawMessage(`{`)}},
		{"missing layer", llm.MockResponse{Content: json.RawMessage(`{"task": "x", "process": "", "self_regulation": "y", "next_step": "z", "retrieval_prompt": "q", "encouragement": "e"}`)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tc.resp)
			e := NewEngine(mock)

			if _, err := e.GenerateFeedback(context.Background(), feedbackInput()); err == nil {
				t.Fatal("expected error, feedback has no safe fallback")
			}
		})
	}
}

func TestGenerateWorkedExample(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"intro": "Let's add two fractions with the same denominator.",
			"steps": ["Check the denominators match.", "Add the numerators.", "Keep the denominator."],
			"key_points": ["Only numerators are added when denominators match."],
			"practice_prompt": "Now try 2/7 + 3/7."
		}`),
	})
	e := NewEngine(mock)

	ex, err := e.GenerateWorkedExample(context.Background(), "fractions", "adding like fractions", bloom.Apply, "4")
	if err != nil {
		t.Fatalf("GenerateWorkedExample: %v", err)
	}
	if len(ex.Steps) != 3 {
		t.Errorf("steps = %d, want 3", len(ex.Steps))
	}
	if ex.PracticePrompt == "" {
		t.Error("missing practice prompt")
	}
	if ex.BloomLevel != bloom.Apply {
		t.Errorf("bloom level = %s, want apply", ex.BloomLevel)
	}
}

func TestGenerateWorkedExampleFailureIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"intro": "x", "steps": [], "key_points": [], "practice_prompt": "y"}`)})
	e := NewEngine(mock)

	if _, err := e.GenerateWorkedExample(context.Background(), "fractions", "adding", bloom.Apply, "4"); err == nil {
		t.Fatal("expected error for empty steps")
	}
}
