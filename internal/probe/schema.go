package probe

import "github.com/abhisek/bloomtutor/internal/llm"

// ProbeSchema defines the JSON schema for Socratic question generation.
var ProbeSchema = &llm.Schema{
	Name:        "socratic-probe",
	Description: "One guiding question with a three-step hint ladder",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "One guiding question. Never states the answer.",
			},
			"hints": map[string]any{
				"type":        "array",
				"description": "Exactly three hints ordered gentle to specific, none revealing the answer",
				"items":       map[string]any{"type": "string"},
				"minItems":    hintLadderSize,
				"maxItems":    hintLadderSize,
			},
			"expected_answer": map[string]any{
				"type":        "string",
				"description": "What a correct answer would contain, in natural language",
			},
			"category": map[string]any{
				"type": "string",
				"enum": []any{"leading", "clarifying", "refocusing", "probing"},
			},
		},
		"required":             []any{"question", "hints", "expected_answer", "category"},
		"additionalProperties": false,
	},
}

// EvalSchema defines the JSON schema for probe response evaluation.
var EvalSchema = &llm.Schema{
	Name:        "probe-evaluation",
	Description: "Judgement of a learner's response to a Socratic question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quality": map[string]any{
				"type": "string",
				"enum": []any{"excellent", "good", "partial", "poor"},
			},
			"give_hint": map[string]any{
				"type":        "boolean",
				"description": "Whether to offer the learner a hint",
			},
			"hint_index": map[string]any{
				"type":        "integer",
				"description": "Which hint to give, 0-indexed into the ladder",
			},
			"advance": map[string]any{
				"type":        "boolean",
				"description": "Whether the learner understands well enough to move on",
			},
			"next_action": map[string]any{
				"type": "string",
				"enum": []any{"hint", "next_probe", "reteach", "advance"},
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One sentence justifying the judgement",
			},
		},
		"required":             []any{"quality", "give_hint", "hint_index", "advance", "next_action", "rationale"},
		"additionalProperties": false,
	},
}
