// Package feedback generates layered feedback on graded answers and
// worked examples for reteaching. Unlike the classifier and probe
// engine there is no safe synthetic substitute here: wrong feedback
// about correctness is worse than no feedback, so failures propagate.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/llm"
)

// Record is three-layer feedback on one graded answer.
type Record struct {
	// Task addresses the answer itself: what was right or wrong.
	Task string
	// Process addresses the approach: how the learner got there.
	Process string
	// SelfRegulation helps the learner check their own work next time.
	SelfRegulation string

	NextStep        string
	RetrievalPrompt string
	Encouragement   string
	BloomLevel      bloom.Level
}

// WorkedExample is a segmented model solution for reteaching a concept.
type WorkedExample struct {
	Intro          string
	Steps          []string
	KeyPoints      []string
	PracticePrompt string
	BloomLevel     bloom.Level
}

// Engine generates feedback via the text-generation provider.
type Engine struct {
	provider llm.Provider
}

// NewEngine creates a feedback engine.
func NewEngine(provider llm.Provider) *Engine {
	return &Engine{provider: provider}
}

// Input carries everything feedback is generated from. Context is an
// optional free-text note about the session.
type Input struct {
	Question       string
	LearnerAnswer  string
	ExpectedAnswer string
	Correct        bool
	BloomLevel     bloom.Level
	Context        string
}

type feedbackOutput struct {
	Task            string `json:"task"`
	Process         string `json:"process"`
	SelfRegulation  string `json:"self_regulation"`
	NextStep        string `json:"next_step"`
	RetrievalPrompt string `json:"retrieval_prompt"`
	Encouragement   string `json:"encouragement"`
}

// GenerateFeedback produces all three feedback layers plus a next
// micro-step, a retrieval-practice prompt, and one line of
// encouragement. Any generation or parse failure is returned as an
// error for the caller to surface.
func (e *Engine) GenerateFeedback(ctx context.Context, in Input) (*Record, error) {
	ctx = llm.WithPurpose(ctx, "feedback")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackUserMessage(in)},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   1024,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("feedback generation: %w", err)
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse feedback response: %w", err)
	}
	if out.Task == "" || out.Process == "" || out.SelfRegulation == "" {
		return nil, fmt.Errorf("feedback response missing a layer")
	}

	return &Record{
		Task:            out.Task,
		Process:         out.Process,
		SelfRegulation:  out.SelfRegulation,
		NextStep:        out.NextStep,
		RetrievalPrompt: out.RetrievalPrompt,
		Encouragement:   out.Encouragement,
		BloomLevel:      in.BloomLevel,
	}, nil
}

type workedExampleOutput struct {
	Intro          string   `json:"intro"`
	Steps          []string `json:"steps"`
	KeyPoints      []string `json:"key_points"`
	PracticePrompt string   `json:"practice_prompt"`
}

// GenerateWorkedExample produces a segmented model solution for the
// concept, for use when adaptation decides to reteach. Fatal on failure
// for the same reason GenerateFeedback is.
func (e *Engine) GenerateWorkedExample(ctx context.Context, topic, concept string, lvl bloom.Level, gradeLevel string) (*WorkedExample, error) {
	ctx = llm.WithPurpose(ctx, "worked-example")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: workedExampleSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildWorkedExampleUserMessage(topic, concept, lvl, gradeLevel)},
		},
		Schema:      WorkedExampleSchema,
		MaxTokens:   1536,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("worked example generation: %w", err)
	}

	var out workedExampleOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse worked example response: %w", err)
	}
	if out.Intro == "" || len(out.Steps) == 0 {
		return nil, fmt.Errorf("worked example response missing steps")
	}

	return &WorkedExample{
		Intro:          out.Intro,
		Steps:          out.Steps,
		KeyPoints:      out.KeyPoints,
		PracticePrompt: out.PracticePrompt,
		BloomLevel:     lvl,
	}, nil
}
