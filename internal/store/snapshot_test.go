package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/pyquiz/internal/question"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions_snapshot.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

const sampleSnapshot = `[
	{"topic":"Loops","question":"How many times does 'for i in range(3)' iterate?","options":["3","2","4","0"],"answer":"3","explanation":"range(3) yields 0, 1, 2."},
	{"topic":"Loops","question":"Which statement exits a loop early?","options":["break","continue","pass","exit"],"answer":"break","explanation":"break leaves the innermost loop."},
	{"topic":"Strings","question":"What does 'abc'.upper() return?","options":["'ABC'","'abc'","'Abc'","an error"],"answer":"'ABC'","explanation":"upper() uppercases every character."}
]`

func openTestSnapshot(t *testing.T) Store {
	t.Helper()
	s, err := Open(Config{Backend: BackendSnapshot, SnapshotPath: writeSnapshot(t, sampleSnapshot)})
	if err != nil {
		t.Fatalf("open snapshot store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotOpen_MissingFile(t *testing.T) {
	_, err := Open(Config{Backend: BackendSnapshot, SnapshotPath: "/does/not/exist.json"})
	if err == nil {
		t.Fatal("expected error")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T", err)
	}
}

func TestSnapshotOpen_EmptyPath(t *testing.T) {
	_, err := Open(Config{Backend: BackendSnapshot})
	if err == nil {
		t.Fatal("expected error")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T", err)
	}
}

func TestSnapshotOpen_MalformedJSON(t *testing.T) {
	path := writeSnapshot(t, `{not json`)
	_, err := Open(Config{Backend: BackendSnapshot, SnapshotPath: path})
	if err == nil {
		t.Fatal("expected error")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T", err)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(Config{Backend: "mongodb"})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T", err)
	}
}

func TestSnapshotCount(t *testing.T) {
	s := openTestSnapshot(t)
	n, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
}

func TestSnapshotSaveIsSilentNoOp(t *testing.T) {
	s := openTestSnapshot(t)
	ctx := context.Background()

	q := question.Question{
		Topic:       "Functions",
		Text:        "What keyword defines a function?",
		Options:     []string{"def", "fun", "func", "lambda"},
		Answer:      "def",
		Explanation: "Functions are defined with def.",
	}
	if err := s.Save(ctx, q); err != nil {
		t.Fatalf("save should succeed silently: %v", err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("save must not change the snapshot, count = %d", n)
	}
}

func TestSnapshotSaveStillValidates(t *testing.T) {
	s := openTestSnapshot(t)
	bad := question.Question{Topic: "Loops", Text: "incomplete"}
	if err := s.Save(context.Background(), bad); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSnapshotRandomBatch(t *testing.T) {
	s := openTestSnapshot(t)
	ctx := context.Background()

	batch, err := s.RandomBatch(ctx, 2)
	if err != nil {
		t.Fatalf("random batch: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(batch))
	}
	if question.SameText(batch[0].Text, batch[1].Text) {
		t.Fatal("sampling must be without replacement")
	}

	// Asking for more than stored returns everything.
	batch, err = s.RandomBatch(ctx, 10)
	if err != nil {
		t.Fatalf("random batch: %v", err)
	}
	if len(batch) != 3 {
		t.Fatalf("expected all 3 questions, got %d", len(batch))
	}
}

func TestSnapshotIsDuplicate(t *testing.T) {
	s := openTestSnapshot(t)
	ctx := context.Background()

	tests := []struct {
		text string
		want bool
	}{
		{"Which statement exits a loop early?", true},
		{"  which STATEMENT exits a loop\tearly?  ", true},
		{"Which statement skips an iteration?", false},
	}
	for _, tt := range tests {
		got, err := s.IsDuplicate(ctx, tt.text)
		if err != nil {
			t.Fatalf("is duplicate: %v", err)
		}
		if got != tt.want {
			t.Errorf("IsDuplicate(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestSnapshotTopicCounts(t *testing.T) {
	s := openTestSnapshot(t)
	counts, err := s.TopicCounts(context.Background())
	if err != nil {
		t.Fatalf("topic counts: %v", err)
	}
	if counts["Loops"] != 2 || counts["Strings"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
