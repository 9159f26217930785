package intent

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/bloomtutor/internal/llm"
	"github.com/abhisek/bloomtutor/internal/store"
)

func TestClassifyParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"intent": "confusion", "confidence": 0.85, "reasoning": "learner says they are lost"}`),
	})
	c := NewClassifier(mock)

	got := c.Classify(context.Background(), "I don't get any of this", nil)
	if got.Intent != Confusion {
		t.Errorf("intent = %s, want confusion", got.Intent)
	}
	if got.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", got.Confidence)
	}
}

func TestClassifyIncludesHistoryInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"intent": "application", "confidence": 0.7, "reasoning": "wants practice"}`),
	})
	c := NewClassifier(mock)

	history := []*store.Message{
		{Role: store.RoleTutor, Content: "Fractions represent parts of a whole."},
		{Role: store.RoleLearner, Content: "okay that makes sense"},
	}
	c.Classify(context.Background(), "can I try some problems?", history)

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "parts of a whole") {
		t.Errorf("prompt missing tutor history: %s", prompt)
	}
	if !strings.Contains(prompt, "can I try some problems?") {
		t.Errorf("prompt missing utterance: %s", prompt)
	}
}

func TestClassifyFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	c := NewClassifier(mock)

	got := c.Classify(context.Background(), "teach me fractions", nil)
	if got.Intent != Conceptual {
		t.Errorf("intent = %s, want conceptual default", got.Intent)
	}
	if got.Confidence != fallbackConfidence {
		t.Errorf("confidence = %v, want %v", got.Confidence, fallbackConfidence)
	}
	if !strings.Contains(got.Reasoning, "defaulted") {
		t.Errorf("reasoning should note the failure: %s", got.Reasoning)
	}
}

func TestClassifyFallsBackOnBadPayload(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed JSON", `{"intent": "conc`},
		{"unknown intent", `{"intent": "existential", "confidence": 0.9, "reasoning": "???"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Content: json.RawMessage(tt.content),
			})
			c := NewClassifier(mock)

			got := c.Classify(context.Background(), "hello", nil)
			if got.Intent != Conceptual || got.Confidence != fallbackConfidence {
				t.Errorf("fallback classification = %+v", got)
			}
		})
	}
}

func TestClassifyClampsConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"intent": "conceptual", "confidence": 2.4, "reasoning": "sure"}`),
	})
	c := NewClassifier(mock)

	got := c.Classify(context.Background(), "what is a cell?", nil)
	if got.Confidence != 1 {
		t.Errorf("confidence = %v, want clamped to 1", got.Confidence)
	}
}
