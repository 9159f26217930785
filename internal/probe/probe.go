// Package probe generates Socratic questions and evaluates learner
// responses to them. Both operations recover locally: a probe is never
// empty and an evaluation failure degrades to "give the first hint".
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/llm"
)

// Category is the kind of Socratic scaffolding a question provides.
type Category string

const (
	Leading    Category = "leading"    // nudges toward the next step
	Clarifying Category = "clarifying" // asks the learner to restate or define
	Refocusing Category = "refocusing" // pulls a drifting learner back on track
	Probing    Category = "probing"    // pushes for deeper reasoning
)

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	switch c {
	case Leading, Clarifying, Refocusing, Probing:
		return true
	}
	return false
}

// hintLadderSize is the fixed number of hints generated per probe,
// ordered gentle to specific.
const hintLadderSize = 3

// Question is a single Socratic probe with its hint ladder.
type Question struct {
	Text           string
	BloomLevel     bloom.Level
	Hints          []string
	ExpectedAnswer string
	Category       Category
}

// Quality tiers for a learner's response to a probe.
type Quality string

const (
	Excellent Quality = "excellent"
	Good      Quality = "good"
	Partial   Quality = "partial"
	Poor      Quality = "poor"
)

// NextAction is what the tutor should do after evaluating a response.
type NextAction string

const (
	ActionHint      NextAction = "hint"
	ActionNextProbe NextAction = "next_probe"
	ActionReteach   NextAction = "reteach"
	ActionAdvance   NextAction = "advance"
)

// Evaluation is the result of judging a learner's response to a probe.
type Evaluation struct {
	Quality   Quality
	GiveHint  bool
	HintIndex int
	Advance   bool
	Next      NextAction
	Rationale string
}

// Engine generates and evaluates probes via the text-generation provider.
type Engine struct {
	provider llm.Provider
}

// NewEngine creates a probe engine.
func NewEngine(provider llm.Provider) *Engine {
	return &Engine{provider: provider}
}

// Input carries the context a probe is generated from. LastResponse and
// LearningGoal are optional.
type Input struct {
	Topic        string
	BloomLevel   bloom.Level
	LastResponse string
	LearningGoal string
}

type probeOutput struct {
	Question       string   `json:"question"`
	Hints          []string `json:"hints"`
	ExpectedAnswer string   `json:"expected_answer"`
	Category       string   `json:"category"`
}

// GenerateProbe produces one guiding question for the topic at the given
// Bloom level. It never fails: on any generation or parse problem, or an
// empty question in the response, a deterministic fallback probe built
// from the topic is returned instead.
func (e *Engine) GenerateProbe(ctx context.Context, in Input) *Question {
	ctx = llm.WithPurpose(ctx, "probe")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: probeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildProbeUserMessage(in)},
		},
		Schema:      ProbeSchema,
		MaxTokens:   1024,
		Temperature: 0.6,
	})
	if err != nil {
		return fallbackProbe(in)
	}

	var out probeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallbackProbe(in)
	}
	if strings.TrimSpace(out.Question) == "" || len(out.Hints) != hintLadderSize {
		return fallbackProbe(in)
	}

	cat := Category(out.Category)
	if !cat.Valid() {
		cat = Probing
	}
	return &Question{
		Text:           out.Question,
		BloomLevel:     in.BloomLevel,
		Hints:          out.Hints,
		ExpectedAnswer: out.ExpectedAnswer,
		Category:       cat,
	}
}

// fallbackProbe builds a deterministic topic-referencing question so the
// caller always has something to ask.
func fallbackProbe(in Input) *Question {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		topic = "this topic"
	}
	return &Question{
		Text:       fmt.Sprintf("Let's think about %s together. What do you already know about it, in your own words?", topic),
		BloomLevel: in.BloomLevel,
		Hints: []string{
			fmt.Sprintf("Start with anything you remember about %s, even a single word or example.", topic),
			fmt.Sprintf("Think of a time you saw %s used, in class or in everyday life.", topic),
			fmt.Sprintf("Try finishing this sentence: \"%s is about...\"", topic),
		},
		ExpectedAnswer: fmt.Sprintf("Any genuine attempt to describe %s in the learner's own words.", topic),
		Category:       Clarifying,
	}
}

type evalOutput struct {
	Quality   string `json:"quality"`
	GiveHint  bool   `json:"give_hint"`
	HintIndex int    `json:"hint_index"`
	Advance   bool   `json:"advance"`
	Next      string `json:"next_action"`
	Rationale string `json:"rationale"`
}

// EvaluateResponse judges a learner's answer to a probe and decides what
// to do next. On any failure it returns the safe fallback: poor quality,
// give the first hint, do not advance.
func (e *Engine) EvaluateResponse(ctx context.Context, question, expectedAnswer, learnerAnswer string, hintsUsed int) *Evaluation {
	ctx = llm.WithPurpose(ctx, "probe-eval")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: evalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvalUserMessage(question, expectedAnswer, learnerAnswer, hintsUsed)},
		},
		Schema:    EvalSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return fallbackEvaluation()
	}

	var out evalOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallbackEvaluation()
	}

	q := Quality(out.Quality)
	switch q {
	case Excellent, Good, Partial, Poor:
	default:
		return fallbackEvaluation()
	}
	next := NextAction(out.Next)
	switch next {
	case ActionHint, ActionNextProbe, ActionReteach, ActionAdvance:
	default:
		return fallbackEvaluation()
	}

	idx := out.HintIndex
	if idx < 0 {
		idx = 0
	}
	if idx >= hintLadderSize {
		idx = hintLadderSize - 1
	}
	return &Evaluation{
		Quality:   q,
		GiveHint:  out.GiveHint,
		HintIndex: idx,
		Advance:   out.Advance,
		Next:      next,
		Rationale: out.Rationale,
	}
}

func fallbackEvaluation() *Evaluation {
	return &Evaluation{
		Quality:   Poor,
		GiveHint:  true,
		HintIndex: 0,
		Advance:   false,
		Next:      ActionHint,
		Rationale: "evaluation unavailable, offering the gentlest hint",
	}
}
