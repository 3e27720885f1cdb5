package quizgen

import (
	"context"

	"github.com/abhisek/pyquiz/internal/question"
)

// Generator produces quiz questions using an LLM provider.
type Generator interface {
	// Generate produces a single question for the given input.
	// Returns a validated Question or an error. Invalid model output
	// gets exactly one corrective retry before failing with a
	// *GenerationError.
	Generate(ctx context.Context, input GenerateInput) (*question.Question, error)
}

// GenerateInput is everything the generator needs for one question.
type GenerateInput struct {
	// Topic is the chapter or subject area of the question.
	Topic string

	// Context is an optional study-material excerpt to ground the
	// question in. May be empty.
	Context string

	// PriorQuestions holds the text of questions already produced or
	// stored, so the model avoids repeating them.
	PriorQuestions []string
}
