package tutor

import "github.com/lingoquest/lingo/internal/llm"

// ExplanationSchema is the shape of the tutor's answer.
var ExplanationSchema = &llm.Schema{
	Name:        "quiz-explanations",
	Description: "Short explanations for quiz questions a learner answered incorrectly",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"index": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the question being explained",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences on why the expected answer is right",
						},
					},
					"required":             []any{"index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"explanations"},
		"additionalProperties": false,
	},
}
