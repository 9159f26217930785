package probe

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/llm"
)

const validProbeJSON = `{
	"question": "If you split a pizza into 8 equal slices and eat 3, what part of the pizza is gone?",
	"hints": [
		"Count how many slices the whole pizza had.",
		"The bottom number of a fraction counts total parts.",
		"Write it as eaten slices over total slices."
	],
	"expected_answer": "Three eighths, expressed as the fraction 3/8.",
	"category": "leading"
}`

func TestGenerateProbeParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validProbeJSON)})
	e := NewEngine(mock)

	q := e.GenerateProbe(context.Background(), Input{Topic: "fractions", BloomLevel: bloom.Apply})

	if q.Text == "" {
		t.Fatal("empty question")
	}
	if q.BloomLevel != bloom.Apply {
		t.Errorf("level = %s, want apply", q.BloomLevel)
	}
	if len(q.Hints) != hintLadderSize {
		t.Errorf("hints = %d, want %d", len(q.Hints), hintLadderSize)
	}
	if q.Category != Leading {
		t.Errorf("category = %s, want leading", q.Category)
	}
}

func TestGenerateProbeFallbacks(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"malformed json", llm.MockResponse{Content: json.RawMessage(`{{`)}},
		{"empty question", llm.MockResponse{Content: json.RawMessage(`{"question": "  ", "hints": ["a","b","c"], "expected_answer": "x", "category": "leading"}`)}},
		{"short hint ladder", llm.MockResponse{Content: json.RawMessage(`{"question": "why?", "hints": ["a"], "expected_answer": "x", "category": "leading"}`)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tc.resp)
			e := NewEngine(mock)

			q := e.GenerateProbe(context.Background(), Input{Topic: "photosynthesis", BloomLevel: bloom.Understand})
			if q == nil || strings.TrimSpace(q.Text) == "" {
				t.Fatal("fallback probe must never be empty")
			}
			if !strings.Contains(q.Text, "photosynthesis") {
				t.Errorf("fallback question should reference the topic: %q", q.Text)
			}
			if len(q.Hints) != hintLadderSize {
				t.Errorf("fallback hints = %d, want %d", len(q.Hints), hintLadderSize)
			}
		})
	}
}

func TestGenerateProbeUnknownCategoryDefaultsToProbing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question": "why?", "hints": ["a","b","c"], "expected_answer": "x", "category": "rhetorical"}`),
	})
	e := NewEngine(mock)

	q := e.GenerateProbe(context.Background(), Input{Topic: "gravity", BloomLevel: bloom.Analyze})
	if q.Category != Probing {
		t.Errorf("category = %s, want probing", q.Category)
	}
}

func TestEvaluateResponseParses(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"quality": "good", "give_hint": false, "hint_index": 0, "advance": true, "next_action": "advance", "rationale": "sound reasoning with minor wording issues"}`),
	})
	e := NewEngine(mock)

	ev := e.EvaluateResponse(context.Background(), "why?", "because", "because of x", 0)
	if ev.Quality != Good {
		t.Errorf("quality = %s, want good", ev.Quality)
	}
	if !ev.Advance || ev.Next != ActionAdvance {
		t.Errorf("expected advance decision, got %+v", ev)
	}
}

func TestEvaluateResponseFallbacks(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"malformed json", llm.MockResponse{Content: json.RawMessage(`nope`)}},
		{"unknown quality", llm.MockResponse{Content: json.RawMessage(`{"quality": "stellar", "give_hint": false, "hint_index": 0, "advance": true, "next_action": "advance", "rationale": "x"}`)}},
		{"unknown action", llm.MockResponse{Content: json.RawMessage(`{"quality": "good", "give_hint": false, "hint_index": 0, "advance": true, "next_action": "celebrate", "rationale": "x"}`)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tc.resp)
			e := NewEngine(mock)

			ev := e.EvaluateResponse(context.Background(), "q", "a", "b", 1)
			if ev.Quality != Poor || !ev.GiveHint || ev.HintIndex != 0 || ev.Advance || ev.Next != ActionHint {
				t.Errorf("fallback mismatch: %+v", ev)
			}
		})
	}
}

func TestEvaluateResponseClampsHintIndex(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"quality": "partial", "give_hint": true, "hint_index": 7, "advance": false, "next_action": "hint", "rationale": "x"}`),
	})
	e := NewEngine(mock)

	ev := e.EvaluateResponse(context.Background(), "q", "a", "b", 2)
	if ev.HintIndex != hintLadderSize-1 {
		t.Errorf("hint index = %d, want %d", ev.HintIndex, hintLadderSize-1)
	}
}
