package quizgen

import "github.com/abhisek/pyquiz/internal/question"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int

	// MaxContextChars truncates the study-material excerpt before it
	// goes into the prompt.
	MaxContextChars int

	// ExcludedTerms lists subjects the model must not ask about.
	ExcludedTerms []string
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         768,
		Temperature:       0.7,
		MaxPriorQuestions: 20,
		MaxContextChars:   4000,
		ExcludedTerms:     question.ExcludedTerms,
	}
}
