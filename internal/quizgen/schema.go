package quizgen

import "github.com/balajinix/avani-academy/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice quiz question with four options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the student, in plain ASCII text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer choices, exactly one of which is correct",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The text of the correct option, copied verbatim from options",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining why the answer is correct",
			},
		},
		"required":             []any{"question", "options", "answer", "explanation"},
		"additionalProperties": false,
	},
}
