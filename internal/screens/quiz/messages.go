package quiz

import (
	"time"

	"github.com/abhisek/pyquiz/internal/question"
)

// batchReadyMsg is sent when the store batch has loaded.
type batchReadyMsg struct {
	Questions []question.Question
	Err       error
}

// questionReadyMsg is sent when a question has been generated.
type questionReadyMsg struct {
	Question *question.Question
	Err      error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
