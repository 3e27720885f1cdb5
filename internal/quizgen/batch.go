package quizgen

import (
	"context"

	"github.com/abhisek/pyquiz/internal/question"
)

// BatchInput configures a multi-question generation run.
type BatchInput struct {
	Topic   string
	Context string

	// Count is how many unique questions to produce.
	Count int

	// Prior seeds the deduplication list, typically with the text of
	// questions already stored for this topic.
	Prior []string

	// IsDuplicate, when set, is consulted for each generated question
	// (for example against a live store). Duplicates are discarded and
	// regenerated.
	IsDuplicate func(ctx context.Context, text string) (bool, error)
}

// GenerateBatch produces up to Count unique questions. Duplicates are
// discarded and retried; each generated text is fed back into the
// prompt's dedup list. Returns the questions produced so far alongside
// the first error encountered.
func GenerateBatch(ctx context.Context, g Generator, in BatchInput) ([]question.Question, error) {
	prior := make([]string, len(in.Prior))
	copy(prior, in.Prior)

	var out []question.Question

	// Duplicates cost extra attempts; cap them so a stubborn model
	// cannot loop forever.
	maxAttempts := in.Count * 3

	for attempts := 0; len(out) < in.Count && attempts < maxAttempts; attempts++ {
		q, err := g.Generate(ctx, GenerateInput{
			Topic:          in.Topic,
			Context:        in.Context,
			PriorQuestions: prior,
		})
		if err != nil {
			return out, err
		}

		prior = append(prior, q.Text)

		if batchContains(out, q.Text) {
			continue
		}
		if in.IsDuplicate != nil {
			dup, err := in.IsDuplicate(ctx, q.Text)
			if err != nil {
				return out, err
			}
			if dup {
				continue
			}
		}

		out = append(out, *q)
	}

	return out, nil
}

func batchContains(qs []question.Question, text string) bool {
	for _, q := range qs {
		if question.SameText(q.Text, text) {
			return true
		}
	}
	return false
}
