// Package quiz runs a scored practice session over a fixed set of
// questions. Sessions are ephemeral: each attempt gets a fresh one and
// nothing is persisted.
package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/pyquiz/internal/question"
)

// State is the session lifecycle. It only moves forward.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateInProgress:
		return "in progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// BatchSizes are the selectable session lengths.
var BatchSizes = []int{10, 20, 30}

// Answer records one submitted answer.
type Answer struct {
	Given   string
	Correct bool
}

// Result is the immediate feedback for a submitted answer.
type Result struct {
	Correct     bool
	Answer      string
	Explanation string
}

// Session is a single scored run through a question batch. Questions
// may all be present at Start (store-backed runs) or arrive one at a
// time via Add (generated on the fly).
type Session struct {
	ID   uuid.UUID
	Size int

	state     State
	questions []question.Question
	answers   []Answer
}

// New creates a session targeting size questions.
func New(size int) *Session {
	return &Session{ID: uuid.New(), Size: size}
}

// Start moves the session to InProgress with an initial batch. When
// the batch is smaller than the target size and nothing more will be
// added, the target shrinks to what is available.
func (s *Session) Start(batch []question.Question) error {
	if s.state != StateNotStarted {
		return fmt.Errorf("session already %s", s.state)
	}
	if len(batch) > 0 && len(batch) < s.Size {
		s.Size = len(batch)
	}
	s.questions = append(s.questions, batch...)
	s.state = StateInProgress
	return nil
}

// Add appends a lazily generated question to an in-progress session.
func (s *Session) Add(q question.Question) error {
	if s.state != StateInProgress {
		return fmt.Errorf("cannot add a question to a session that is %s", s.state)
	}
	if len(s.questions) >= s.Size {
		return fmt.Errorf("session already holds %d questions", s.Size)
	}
	s.questions = append(s.questions, q)
	return nil
}

// Current returns the question awaiting an answer. ok is false when
// the session is over or the next question has not arrived yet.
func (s *Session) Current() (question.Question, bool) {
	if s.state != StateInProgress || len(s.answers) >= len(s.questions) {
		return question.Question{}, false
	}
	return s.questions[len(s.answers)], true
}

// Submit records an answer for the current question and returns the
// feedback. The session completes itself after the final answer.
func (s *Session) Submit(given string) (Result, error) {
	q, ok := s.Current()
	if !ok {
		return Result{}, fmt.Errorf("no question to answer (session %s)", s.state)
	}

	correct := question.SameOption(given, q.Answer)
	s.answers = append(s.answers, Answer{Given: given, Correct: correct})

	if len(s.answers) >= s.Size {
		s.state = StateCompleted
	}

	return Result{
		Correct:     correct,
		Answer:      q.Answer,
		Explanation: q.Explanation,
	}, nil
}

// Finish completes the session early, for example when mid-session
// generation fails. The target size shrinks to what was answered.
func (s *Session) Finish() {
	if s.state != StateInProgress {
		return
	}
	s.Size = len(s.answers)
	s.state = StateCompleted
}

// Score returns answered-correctly and total-answered counts.
func (s *Session) Score() (correct, total int) {
	for _, a := range s.answers {
		if a.Correct {
			correct++
		}
	}
	return correct, len(s.answers)
}

// Progress returns how many questions have been answered out of the
// target size.
func (s *Session) Progress() (answered, size int) {
	return len(s.answers), s.Size
}

// State returns the session lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Questions returns the questions served so far, in order.
func (s *Session) Questions() []question.Question {
	out := make([]question.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Answers returns the recorded answers, in question order.
func (s *Session) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}
