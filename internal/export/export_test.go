package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/pyquiz/internal/question"
	"github.com/abhisek/pyquiz/internal/store"
)

func sampleQuestions() []question.Question {
	return []question.Question{
		{
			Topic:       "Loops",
			Text:        "Which statement exits a loop early?",
			Options:     []string{"break", "continue", "pass", "exit"},
			Answer:      "break",
			Explanation: "break leaves the innermost loop.",
		},
		{
			Topic:       "Strings",
			Text:        "What does 'abc'.upper() return?",
			Options:     []string{"'ABC'", "'abc'", "'Abc'", "an error"},
			Answer:      "'ABC'",
			Explanation: "upper() uppercases every character.",
		},
	}
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func openSnapshotStore(t *testing.T, qs []question.Question) store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	data, err := json.Marshal(qs)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}
	s, err := store.Open(store.Config{Backend: store.BackendSnapshot, SnapshotPath: path})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshot_RoundTrip(t *testing.T) {
	src := openSnapshotStore(t, sampleQuestions())

	out := filepath.Join(t.TempDir(), DefaultSnapshotName)
	n, err := Snapshot(context.Background(), src, out)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 exported, got %d", n)
	}

	// The exported file must open as a snapshot store with the same
	// content.
	reopened, err := store.Open(store.Config{Backend: store.BackendSnapshot, SnapshotPath: out})
	if err != nil {
		t.Fatalf("reopen exported snapshot: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	want := sampleQuestions()
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Text != want[i].Text || got[i].Answer != want[i].Answer || got[i].Topic != want[i].Topic {
			t.Errorf("question %d mismatch: %+v", i, got[i])
		}
	}
}

func TestSnapshot_WriteFailure(t *testing.T) {
	src := openSnapshotStore(t, sampleQuestions())

	_, err := Snapshot(context.Background(), src, "/no/such/dir/out.json")
	if err == nil {
		t.Fatal("expected error")
	}
	var expErr *ExportError
	if !errors.As(err, &expErr) {
		t.Fatalf("expected ExportError, got %T", err)
	}
}

func TestPDF_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "quiz.pdf")
	err := PDF(PDFDoc{
		Title:     "PyQuiz Practice",
		Subtitle:  "Score: 1/2",
		Questions: sampleQuestions(),
	}, out)
	if err != nil {
		t.Fatalf("pdf export: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data), "%PDF") {
		t.Fatal("expected a PDF file")
	}
}

func TestMoodle_SkipsInvalid(t *testing.T) {
	qs := sampleQuestions()
	qs = append(qs, question.Question{
		Topic:   "Broken",
		Text:    "Answer is not among the options?",
		Options: []string{"a", "b", "c", "d"},
		Answer:  "e",
	})

	out := filepath.Join(t.TempDir(), "quiz.xml")
	n, err := Moodle(qs, "PyQuiz", out, discardLogger())
	if err != nil {
		t.Fatalf("moodle export: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 exported (invalid skipped), got %d", n)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read xml: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, `type="multichoice"`) {
		t.Error("expected multichoice questions")
	}
	if !strings.Contains(content, "$course$/PyQuiz") {
		t.Error("expected the category element")
	}
	if got := strings.Count(content, `fraction="100"`); got != 2 {
		t.Errorf("expected one correct answer per exported question, got %d", got)
	}
	if strings.Contains(content, "Answer is not among the options?") {
		t.Error("invalid question should have been skipped")
	}
}

func TestMoodle_NoCategory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "quiz.xml")
	_, err := Moodle(sampleQuestions(), "", out, discardLogger())
	if err != nil {
		t.Fatalf("moodle export: %v", err)
	}

	data, _ := os.ReadFile(out)
	if strings.Contains(string(data), `type="category"`) {
		t.Error("expected no category element")
	}
}
