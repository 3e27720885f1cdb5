package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a Python instructor creating multiple-choice practice questions for students working through an introductory programming course.

Rules:
- Generate a single multiple-choice question for the given topic.
- The question must test understanding, not trivia. Short code snippets in plain text are encouraged where they help.
- Provide exactly 4 options. Exactly one is correct. Distractors must be plausible and reflect common beginner mistakes, not random values.
- The answer field must repeat the correct option verbatim.
- The explanation should say in one or two sentences why the answer is correct.
- If study material is provided, base the question on it.
- Do not ask about any of the excluded subjects.
- Do not repeat or trivially rephrase any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)

	if len(cfg.ExcludedTerms) > 0 {
		fmt.Fprintf(&b, "Excluded subjects: %s\n", strings.Join(cfg.ExcludedTerms, ", "))
	}

	if input.Context != "" {
		excerpt := input.Context
		if cfg.MaxContextChars > 0 {
			// Truncate on a rune boundary; PDF text is not plain ASCII.
			if runes := []rune(excerpt); len(runes) > cfg.MaxContextChars {
				excerpt = string(runes[:cfg.MaxContextChars])
			}
		}
		b.WriteString("\nStudy material:\n")
		b.WriteString(excerpt)
		b.WriteString("\n")
	}

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildPrior(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildPrior formats prior questions for the prompt, respecting the max
// limit. Returns "None" if there are no prior questions.
func buildPrior(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

// correctiveMessage tells the model what was wrong with its previous
// output so the retry can fix it.
func correctiveMessage(reason error) string {
	return fmt.Sprintf(
		"Your previous response was invalid: %v\nProduce a corrected question that satisfies every rule. Respond with JSON only.",
		reason,
	)
}
