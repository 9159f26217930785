package feedback

import "github.com/abhisek/bloomtutor/internal/llm"

// FeedbackSchema defines the JSON schema for three-layer answer feedback.
var FeedbackSchema = &llm.Schema{
	Name:        "answer-feedback",
	Description: "Three-layer feedback on one graded learner answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"task": map[string]any{
				"type":        "string",
				"description": "What was right or wrong in the answer itself",
			},
			"process": map[string]any{
				"type":        "string",
				"description": "Feedback on the approach the learner took",
			},
			"self_regulation": map[string]any{
				"type":        "string",
				"description": "A strategy for the learner to check their own work",
			},
			"next_step": map[string]any{
				"type":        "string",
				"description": "One small concrete action to take next",
			},
			"retrieval_prompt": map[string]any{
				"type":        "string",
				"description": "A question prompting later recall of this concept",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One short genuine line of encouragement",
			},
		},
		"required":             []any{"task", "process", "self_regulation", "next_step", "retrieval_prompt", "encouragement"},
		"additionalProperties": false,
	},
}

// WorkedExampleSchema defines the JSON schema for worked examples.
var WorkedExampleSchema = &llm.Schema{
	Name:        "worked-example",
	Description: "A segmented model solution for reteaching a concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intro": map[string]any{
				"type":        "string",
				"description": "One-sentence framing of the problem being modeled",
			},
			"steps": map[string]any{
				"type":        "array",
				"description": "Numbered solution steps, each stating what is done and why",
				"items":       map[string]any{"type": "string"},
				"minItems":    2,
			},
			"key_points": map[string]any{
				"type":        "array",
				"description": "The points to remember from this example",
				"items":       map[string]any{"type": "string"},
			},
			"practice_prompt": map[string]any{
				"type":        "string",
				"description": "A similar problem for the learner to try alone",
			},
		},
		"required":             []any{"intro", "steps", "key_points", "practice_prompt"},
		"additionalProperties": false,
	},
}
