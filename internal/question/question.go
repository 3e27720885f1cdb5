package question

import (
	"fmt"
	"strings"
	"time"
)

// NumOptions is the number of answer options every question carries.
const NumOptions = 4

// Question represents a single multiple-choice quiz question.
type Question struct {
	// Topic is the topic the question was generated for.
	Topic string `json:"topic"`

	// Text is the question prompt shown to the user.
	Text string `json:"question"`

	// Options holds exactly 4 answer options in display order.
	Options []string `json:"options"`

	// Answer is the correct answer. Always equals one of Options.
	Answer string `json:"answer"`

	// Explanation is shown after the user answers.
	Explanation string `json:"explanation"`

	// CreatedAt is when the question was saved. Zero for questions that
	// were generated but never persisted.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Validate checks the question invariant: non-empty text, exactly 4
// non-empty distinct options, and an answer that matches one of them.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != NumOptions {
		return fmt.Errorf("expected %d options, got %d", NumOptions, len(q.Options))
	}

	seen := make(map[string]bool, NumOptions)
	for i, opt := range q.Options {
		key := strings.TrimSpace(opt)
		if key == "" {
			return fmt.Errorf("option %d is empty", i+1)
		}
		if seen[key] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[key] = true
	}

	if !q.HasOption(q.Answer) {
		return fmt.Errorf("answer %q is not among the options", q.Answer)
	}
	return nil
}

// HasOption reports whether s matches one of the question's options.
func (q *Question) HasOption(s string) bool {
	for _, opt := range q.Options {
		if SameOption(opt, s) {
			return true
		}
	}
	return false
}

// SameOption is the equality used everywhere an answer is matched
// against an option: surrounding whitespace is ignored, case is not.
// 'abc' and 'ABC' are different Python values and stay different here.
func SameOption(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// Normalize canonicalizes question text for duplicate checks: trimmed,
// inner whitespace collapsed, lowercased. Not used for options, whose
// case is significant.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// SameText reports whether two question texts are equal after
// normalization. This is the duplicate identity used by the stores.
func SameText(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
