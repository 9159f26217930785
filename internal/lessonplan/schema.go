package lessonplan

import "github.com/abhisek/bloomtutor/internal/llm"

// PlanSchema defines the JSON schema for lesson plan generation.
var PlanSchema = &llm.Schema{
	Name:        "lesson-plan",
	Description: "A structured, Bloom-ordered lesson plan for one tutoring session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"goals": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    2,
				"maxItems":    4,
				"description": "Learning goals for the session",
			},
			"prior_check": map[string]any{
				"type":        "string",
				"description": "One question probing what the learner already knows",
			},
			"steps": map[string]any{
				"type":     "array",
				"minItems": 4,
				"maxItems": 6,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"explain", "example", "practice", "reflection", "probe"},
						},
						"content": map[string]any{
							"type":        "string",
							"description": "What happens in this step",
						},
						"bloom_level": map[string]any{
							"type": "string",
							"enum": []any{"remember", "understand", "apply", "analyze", "evaluate", "create"},
						},
						"checkpoints": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Observable signs the step landed",
						},
						"estimated_minutes": map[string]any{
							"type":        "integer",
							"description": "Time estimate for this step",
						},
					},
					"required":             []any{"type", "content", "bloom_level", "checkpoints", "estimated_minutes"},
					"additionalProperties": false,
				},
				"description": "Ordered steps progressing through Bloom levels",
			},
			"resources": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Optional resource references",
			},
		},
		"required":             []any{"goals", "prior_check", "steps"},
		"additionalProperties": false,
	},
}

// PriorKnowledgeSchema defines the JSON schema for prior-knowledge assessment.
var PriorKnowledgeSchema = &llm.Schema{
	Name:        "prior-knowledge",
	Description: "Assessment of a learner's prior knowledge from their response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{
				"type": "string",
				"enum": []any{"none", "partial", "good"},
			},
			"gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific gaps in the expected knowledge",
			},
			"next_step": map[string]any{
				"type":        "string",
				"description": "Recommended starting point for the lesson",
			},
		},
		"required":             []any{"level", "gaps", "next_step"},
		"additionalProperties": false,
	},
}
