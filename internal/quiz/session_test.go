package quiz

import (
	"fmt"
	"testing"

	"github.com/abhisek/pyquiz/internal/question"
)

func makeBatch(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range n {
		qs[i] = question.Question{
			Topic:       "Loops",
			Text:        fmt.Sprintf("Question number %d?", i+1),
			Options:     []string{"right", "wrong", "also wrong", "nope"},
			Answer:      "right",
			Explanation: "because",
		}
	}
	return qs
}

func TestSession_FullRun(t *testing.T) {
	s := New(10)
	if s.State() != StateNotStarted {
		t.Fatalf("expected NotStarted, got %s", s.State())
	}

	if err := s.Start(makeBatch(10)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != StateInProgress {
		t.Fatalf("expected InProgress, got %s", s.State())
	}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		q, ok := s.Current()
		if !ok {
			t.Fatalf("expected question %d", i+1)
		}
		if seen[q.Text] {
			t.Fatalf("question served twice: %q", q.Text)
		}
		seen[q.Text] = true

		// Answer evens correctly, odds wrong.
		given := "right"
		if i%2 == 1 {
			given = "wrong"
		}
		res, err := s.Submit(given)
		if err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
		if res.Correct != (i%2 == 0) {
			t.Fatalf("question %d: unexpected correctness %t", i+1, res.Correct)
		}
		if res.Answer != "right" {
			t.Fatalf("expected feedback to carry the answer, got %q", res.Answer)
		}
	}

	if s.State() != StateCompleted {
		t.Fatalf("expected Completed, got %s", s.State())
	}
	correct, total := s.Score()
	if correct != 5 || total != 10 {
		t.Fatalf("expected 5/10, got %d/%d", correct, total)
	}
}

func TestSession_SubmitMatchesPaddedAnswer(t *testing.T) {
	batch := makeBatch(2)
	batch[0].Answer = " right "
	batch[1].Options = []string{"'ABC'", "'abc'", "'Abc'", "an error"}
	batch[1].Answer = "'abc'"

	s := New(2)
	if err := s.Start(batch); err != nil {
		t.Fatalf("start: %v", err)
	}

	res, err := s.Submit("right")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct {
		t.Fatal("padding around the stored answer must not affect scoring")
	}

	res, err = s.Submit("'ABC'")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct {
		t.Fatal("case-distinct option must not score as correct")
	}
}

func TestSession_SubmitAfterCompleted(t *testing.T) {
	s := New(1)
	if err := s.Start(makeBatch(1)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Submit("right"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.State() != StateCompleted {
		t.Fatalf("expected Completed, got %s", s.State())
	}
	if _, err := s.Submit("right"); err == nil {
		t.Fatal("expected error after completion")
	}
}

func TestSession_StartTwice(t *testing.T) {
	s := New(2)
	if err := s.Start(makeBatch(2)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(makeBatch(2)); err == nil {
		t.Fatal("expected error on second start")
	}
}

func TestSession_ShrinksToAvailable(t *testing.T) {
	s := New(10)
	if err := s.Start(makeBatch(4)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, size := s.Progress(); size != 4 {
		t.Fatalf("expected size to shrink to 4, got %d", size)
	}

	for i := 0; i < 4; i++ {
		if _, err := s.Submit("right"); err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
	}
	if s.State() != StateCompleted {
		t.Fatalf("expected Completed, got %s", s.State())
	}
}

func TestSession_LazyAdd(t *testing.T) {
	s := New(3)
	if err := s.Start(nil); err != nil {
		t.Fatalf("start: %v", err)
	}

	// No question yet.
	if _, ok := s.Current(); ok {
		t.Fatal("expected no current question before Add")
	}

	batch := makeBatch(3)
	for i, q := range batch {
		if err := s.Add(q); err != nil {
			t.Fatalf("add %d: %v", i+1, err)
		}
		if _, err := s.Submit("right"); err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
	}

	if s.State() != StateCompleted {
		t.Fatalf("expected Completed, got %s", s.State())
	}
	if err := s.Add(batch[0]); err == nil {
		t.Fatal("expected error adding to a completed session")
	}
}

func TestSession_FinishEarly(t *testing.T) {
	s := New(10)
	if err := s.Start(makeBatch(10)); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := s.Submit("right"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	s.Finish()
	if s.State() != StateCompleted {
		t.Fatalf("expected Completed, got %s", s.State())
	}
	correct, total := s.Score()
	if correct != 3 || total != 3 {
		t.Fatalf("expected 3/3, got %d/%d", correct, total)
	}
	if _, size := s.Progress(); size != 3 {
		t.Fatalf("expected size 3 after early finish, got %d", size)
	}
}

func TestSession_UniqueIDs(t *testing.T) {
	if New(10).ID == New(10).ID {
		t.Fatal("expected distinct session IDs")
	}
}
