package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/bloomtutor/internal/llm"
)

// LLMAssessor grades free-text answers with the text-generation provider.
// Unlike LengthAssessor it can fail; callers decide whether to propagate
// or fall back to the heuristic.
type LLMAssessor struct {
	provider llm.Provider
}

// NewLLMAssessor creates an LLM-backed grader.
func NewLLMAssessor(provider llm.Provider) *LLMAssessor {
	return &LLMAssessor{provider: provider}
}

type gradingOutput struct {
	Correct    bool    `json:"correct"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// gradingSchema defines the JSON schema for correctness judgments.
var gradingSchema = &llm.Schema{
	Name:        "answer-grading",
	Description: "Judgment of whether a learner's answer matches the expected one",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer demonstrates the expected understanding",
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "Certainty of the judgment, 0.0-1.0",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One sentence explaining the judgment",
			},
		},
		"required":             []any{"correct", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}

const gradingSystemPrompt = `You grade a learner's answer to a tutoring question. Judge understanding, not phrasing: an answer in the learner's own words that captures the expected idea is correct. Partial or off-topic answers are incorrect. Report your confidence honestly.`

var gradingUserTemplate = template.Must(template.New("grading").Parse(`Question: {{.Question}}
Expected answer: {{.Expected}}
Learner's answer: {{.Answer}}`))

func (a *LLMAssessor) Assess(ctx context.Context, question, expectedAnswer, learnerAnswer string) (Result, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	var buf bytes.Buffer
	err := gradingUserTemplate.Execute(&buf, struct {
		Question, Expected, Answer string
	}{question, expectedAnswer, learnerAnswer})
	if err != nil {
		return Result{}, fmt.Errorf("build grading prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:    gradingSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return Result{}, fmt.Errorf("grade answer: %w", err)
	}

	var out gradingOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Result{}, fmt.Errorf("parse grading response: %w", err)
	}

	conf := out.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return Result{Correct: out.Correct, Confidence: conf}, nil
}
