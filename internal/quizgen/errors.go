package quizgen

import (
	"encoding/json"
	"fmt"
)

// GenerationError means the model produced invalid output twice in a
// row for the same request (the initial attempt plus the corrective
// retry).
type GenerationError struct {
	Topic  string
	Output json.RawMessage
	Reason error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed for topic %q: %v", e.Topic, e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Reason
}
