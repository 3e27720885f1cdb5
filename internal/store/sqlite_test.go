package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/pyquiz/internal/question"
)

func openTestDB(t *testing.T) Store {
	t.Helper()
	s, err := Open(Config{
		Backend: BackendSQLite,
		DBPath:  filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func loopQuestion(text string) question.Question {
	return question.Question{
		Topic:       "Loops",
		Text:        text,
		Options:     []string{"break", "continue", "pass", "return"},
		Answer:      "break",
		Explanation: "break leaves the innermost loop.",
	}
}

func TestSQLiteSaveAndCount(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count (empty): %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}

	if err := s.Save(ctx, loopQuestion("Which statement exits a loop early?")); err != nil {
		t.Fatalf("save: %v", err)
	}

	n, err = s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
}

func TestSQLiteSaveRejectsInvalid(t *testing.T) {
	s := openTestDB(t)
	bad := question.Question{Topic: "Loops", Text: "no options"}
	if err := s.Save(context.Background(), bad); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	want := question.Question{
		Topic:       "Strings",
		Text:        "What does 'abc'.upper() return?",
		Options:     []string{"'ABC'", "'abc'", "'Abc'", "an error"},
		Answer:      "'ABC'",
		Explanation: "upper() uppercases every character.",
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 question, got %d", len(all))
	}

	got := all[0]
	if got.Topic != want.Topic || got.Text != want.Text || got.Answer != want.Answer || got.Explanation != want.Explanation {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Options) != 4 || got.Options[0] != "'ABC'" {
		t.Fatalf("options mismatch: %v", got.Options)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestSQLiteRandomBatch(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	texts := []string{
		"Which statement exits a loop early?",
		"Which statement skips to the next iteration?",
		"What does range(3) yield?",
		"When does a while loop stop?",
	}
	for _, text := range texts {
		if err := s.Save(ctx, loopQuestion(text)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	batch, err := s.RandomBatch(ctx, 3)
	if err != nil {
		t.Fatalf("random batch: %v", err)
	}
	if len(batch) != 3 {
		t.Fatalf("expected 3, got %d", len(batch))
	}

	seen := make(map[string]bool)
	for _, q := range batch {
		if seen[q.Text] {
			t.Fatalf("question repeated in batch: %q", q.Text)
		}
		seen[q.Text] = true
	}

	// More than stored returns everything.
	batch, err = s.RandomBatch(ctx, 100)
	if err != nil {
		t.Fatalf("random batch: %v", err)
	}
	if len(batch) != len(texts) {
		t.Fatalf("expected %d, got %d", len(texts), len(batch))
	}
}

func TestSQLiteIsDuplicate(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	if err := s.Save(ctx, loopQuestion("Which statement exits a loop early?")); err != nil {
		t.Fatalf("save: %v", err)
	}

	dup, err := s.IsDuplicate(ctx, "WHICH  statement exits a loop early?")
	if err != nil {
		t.Fatalf("is duplicate: %v", err)
	}
	if !dup {
		t.Fatal("expected duplicate after normalization")
	}

	dup, err = s.IsDuplicate(ctx, "Something else entirely?")
	if err != nil {
		t.Fatalf("is duplicate: %v", err)
	}
	if dup {
		t.Fatal("expected no duplicate")
	}
}

func TestSQLiteTopicCounts(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	if err := s.Save(ctx, loopQuestion("Which statement exits a loop early?")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, loopQuestion("When does a while loop stop?")); err != nil {
		t.Fatalf("save: %v", err)
	}

	counts, err := s.TopicCounts(ctx)
	if err != nil {
		t.Fatalf("topic counts: %v", err)
	}
	if counts["Loops"] != 2 {
		t.Fatalf("expected 2 for Loops, got %v", counts)
	}
}
