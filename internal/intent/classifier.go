// Package intent classifies learner utterances into pedagogical intents.
// Classification is best-effort: it must never block a turn, so every
// failure path collapses to a safe default instead of an error.
package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/bloomtutor/internal/llm"
	"github.com/abhisek/bloomtutor/internal/store"
)

// Intent is the pedagogical reading of a learner utterance.
type Intent string

const (
	Conceptual     Intent = "conceptual"     // wants the material taught
	Application    Intent = "application"    // wants to apply or practice
	Administrative Intent = "administrative" // session logistics, not content
	Confusion      Intent = "confusion"      // lost, needs guiding questions
)

// Valid reports whether i is one of the defined intents.
func (i Intent) Valid() bool {
	switch i {
	case Conceptual, Application, Administrative, Confusion:
		return true
	}
	return false
}

// Classification is the classifier's output.
type Classification struct {
	Intent     Intent
	Confidence float64
	Reasoning  string
}

// fallbackConfidence is used when classification fails and a default
// intent is substituted.
const fallbackConfidence = 0.5

// Classifier maps utterances to intents via the text-generation provider.
type Classifier struct {
	provider llm.Provider
}

// NewClassifier creates an intent classifier.
func NewClassifier(provider llm.Provider) *Classifier {
	return &Classifier{provider: provider}
}

type classifyOutput struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// ClassifySchema defines the JSON schema for intent classification.
var ClassifySchema = &llm.Schema{
	Name:        "intent-classification",
	Description: "Pedagogical intent of a learner utterance in a tutoring session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{
				"type": "string",
				"enum": []any{"conceptual", "application", "administrative", "confusion"},
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "Classification certainty, 0.0-1.0",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One sentence explaining the classification",
			},
		},
		"required":             []any{"intent", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}

const classifySystemPrompt = `You classify what a learner wants from their tutor. Categories:
- conceptual: they want a concept taught or explained from the ground up.
- application: they want to practice, apply, or work through problems.
- administrative: session logistics (time, progress, how this works), not content.
- confusion: they are lost or stuck and need guiding questions, not a lecture.
Pick exactly one category. Use the recent conversation for context.`

var classifyUserTemplate = template.Must(template.New("classify").Parse(`Recent conversation:
{{- if .History}}
{{- range .History}}
[{{.Role}}] {{.Content}}
{{- end}}
{{- else}}
(none)
{{- end}}

Learner's new message: {{.Utterance}}`))

// Classify maps utterance to an intent given recent session history.
// On any generation or parse failure it returns the conceptual default
// with the failure recorded in the reasoning; it never returns an error.
func (c *Classifier) Classify(ctx context.Context, utterance string, history []*store.Message) Classification {
	ctx = llm.WithPurpose(ctx, "intent")

	var buf bytes.Buffer
	err := classifyUserTemplate.Execute(&buf, struct {
		History   []*store.Message
		Utterance string
	}{history, utterance})
	if err != nil {
		return fallback(fmt.Sprintf("prompt build failed: %v", err))
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: classifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:    ClassifySchema,
		MaxTokens: 256,
	})
	if err != nil {
		return fallback(fmt.Sprintf("classification failed: %v", err))
	}

	var out classifyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallback(fmt.Sprintf("unparseable classification: %v", err))
	}

	parsed := Intent(out.Intent)
	if !parsed.Valid() {
		return fallback(fmt.Sprintf("unknown intent %q", out.Intent))
	}

	conf := out.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return Classification{Intent: parsed, Confidence: conf, Reasoning: out.Reasoning}
}

func fallback(reason string) Classification {
	return Classification{
		Intent:     Conceptual,
		Confidence: fallbackConfidence,
		Reasoning:  "defaulted to conceptual: " + reason,
	}
}
