package grading

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/bloomtutor/internal/llm"
)

func TestLengthAssessor(t *testing.T) {
	tests := []struct {
		answer      string
		wantCorrect bool
	}{
		{"", false},
		{"yes", false},
		{"     padded     ", false},
		{"a fraction shows parts of a whole", true},
	}
	a := NewLengthAssessor()
	for _, tt := range tests {
		got, err := a.Assess(context.Background(), "q", "expected", tt.answer)
		if err != nil {
			t.Fatalf("assess %q: %v", tt.answer, err)
		}
		if got.Correct != tt.wantCorrect {
			t.Errorf("Assess(%q).Correct = %v, want %v", tt.answer, got.Correct, tt.wantCorrect)
		}
		if got.Confidence != heuristicConfidence {
			t.Errorf("Assess(%q).Confidence = %v, want %v", tt.answer, got.Confidence, heuristicConfidence)
		}
	}
}

func TestLLMAssessor(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"correct": true, "confidence": 0.92, "reasoning": "captures the expected idea"}`),
	})
	a := NewLLMAssessor(mock)

	got, err := a.Assess(context.Background(), "What is a fraction?", "parts of a whole", "it means pieces of one thing")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if !got.Correct || got.Confidence != 0.92 {
		t.Errorf("result = %+v", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestLLMAssessorClampsConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"correct": false, "confidence": 1.7, "reasoning": "overconfident model"}`),
	})
	a := NewLLMAssessor(mock)

	got, err := a.Assess(context.Background(), "q", "e", "a")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if got.Confidence != 1 {
		t.Errorf("confidence = %v, want clamped to 1", got.Confidence)
	}
}

func TestLLMAssessorPropagatesFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	a := NewLLMAssessor(mock)

	if _, err := a.Assess(context.Background(), "q", "e", "a"); err == nil {
		t.Fatal("expected error from unavailable provider")
	}
}
