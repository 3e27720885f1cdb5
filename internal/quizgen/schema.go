package quizgen

import "github.com/abhisek/pyquiz/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice Python question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text shown to the learner. May include a short code snippet in plain text.",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options. Exactly one is correct; distractors reflect common beginner mistakes.",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer, copied verbatim from one of the options.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short explanation of why the answer is correct, suitable for a beginner.",
			},
		},
		"required":             []any{"question", "options", "answer", "explanation"},
		"additionalProperties": false,
	},
}
