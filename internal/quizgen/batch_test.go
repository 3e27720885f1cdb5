package quizgen

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/pyquiz/internal/question"
)

// scriptedGenerator serves canned results in order.
type scriptedGenerator struct {
	results []scriptedResult
	inputs  []GenerateInput
}

type scriptedResult struct {
	q   *question.Question
	err error
}

func (s *scriptedGenerator) Generate(_ context.Context, in GenerateInput) (*question.Question, error) {
	s.inputs = append(s.inputs, in)
	if len(s.results) == 0 {
		return nil, errors.New("script exhausted")
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r.q, r.err
}

func testQuestion(text string) *question.Question {
	return &question.Question{
		Topic:       "Loops",
		Text:        text,
		Options:     []string{"a", "b", "c", "d"},
		Answer:      "a",
		Explanation: "because",
	}
}

func TestGenerateBatch_CollectsCount(t *testing.T) {
	g := &scriptedGenerator{results: []scriptedResult{
		{q: testQuestion("q one")},
		{q: testQuestion("q two")},
		{q: testQuestion("q three")},
	}}

	got, err := GenerateBatch(context.Background(), g, BatchInput{Topic: "Loops", Count: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(got))
	}
}

func TestGenerateBatch_SkipsBatchDuplicates(t *testing.T) {
	g := &scriptedGenerator{results: []scriptedResult{
		{q: testQuestion("q one")},
		{q: testQuestion("Q  ONE")}, // Same after normalization.
		{q: testQuestion("q two")},
	}}

	got, err := GenerateBatch(context.Background(), g, BatchInput{Topic: "Loops", Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	if got[1].Text != "q two" {
		t.Errorf("expected the duplicate discarded, got %q", got[1].Text)
	}
}

func TestGenerateBatch_StoreDuplicateCheck(t *testing.T) {
	g := &scriptedGenerator{results: []scriptedResult{
		{q: testQuestion("already stored")},
		{q: testQuestion("fresh")},
	}}

	got, err := GenerateBatch(context.Background(), g, BatchInput{
		Topic: "Loops",
		Count: 1,
		IsDuplicate: func(_ context.Context, text string) (bool, error) {
			return text == "already stored", nil
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Text != "fresh" {
		t.Fatalf("expected only the fresh question, got %+v", got)
	}
}

func TestGenerateBatch_ErrorReturnsPartial(t *testing.T) {
	g := &scriptedGenerator{results: []scriptedResult{
		{q: testQuestion("q one")},
		{err: &GenerationError{Topic: "Loops", Reason: errors.New("bad output twice")}},
	}}

	got, err := GenerateBatch(context.Background(), g, BatchInput{Topic: "Loops", Count: 3})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 partial question, got %d", len(got))
	}
}

func TestGenerateBatch_PriorGrows(t *testing.T) {
	g := &scriptedGenerator{results: []scriptedResult{
		{q: testQuestion("q one")},
		{q: testQuestion("q two")},
	}}

	_, err := GenerateBatch(context.Background(), g, BatchInput{
		Topic: "Loops",
		Count: 2,
		Prior: []string{"seed question"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := g.inputs[1]
	if len(second.PriorQuestions) != 2 {
		t.Fatalf("expected seed + first generated text, got %v", second.PriorQuestions)
	}
	if second.PriorQuestions[1] != "q one" {
		t.Errorf("expected generated text appended, got %v", second.PriorQuestions)
	}
}
