package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pyquiz/internal/llm"
	"github.com/abhisek/pyquiz/internal/question"
)

func validOutput() json.RawMessage {
	return json.RawMessage(`{
		"question": "What is the result of len('hello')?",
		"options": ["5", "4", "6", "an error"],
		"answer": "5",
		"explanation": "len returns the number of characters in the string."
	}`)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ExcludedTerms = []string{"turtle graphics"}
	return cfg
}

func TestGenerate_ValidOutput(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validOutput()},
	)
	g := New(mock, testConfig())

	q, err := g.Generate(context.Background(), GenerateInput{Topic: "Strings"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Topic != "Strings" {
		t.Errorf("expected topic Strings, got %q", q.Topic)
	}
	if q.Answer != "5" {
		t.Errorf("expected answer 5, got %q", q.Answer)
	}
	if !q.HasOption(q.Answer) {
		t.Error("answer must remain one of the options after shuffling")
	}
	if len(q.Options) != question.NumOptions {
		t.Errorf("expected %d options, got %d", question.NumOptions, len(q.Options))
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestGenerate_InvalidThenCorrected(t *testing.T) {
	// First response: answer not among the options.
	bad := json.RawMessage(`{
		"question": "What is 2 ** 3?",
		"options": ["6", "9", "5", "23"],
		"answer": "8",
		"explanation": "** is exponentiation."
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: validOutput()},
	)
	g := New(mock, testConfig())

	q, err := g.Generate(context.Background(), GenerateInput{Topic: "Operators"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q == nil {
		t.Fatal("expected a question from the corrective retry")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}

	// The retry must carry the invalid output and the failure reason.
	retry := mock.Calls[1]
	if len(retry.Messages) != 3 {
		t.Fatalf("expected 3 messages on retry, got %d", len(retry.Messages))
	}
	if retry.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("expected assistant echo of the bad output, got role %q", retry.Messages[1].Role)
	}
	if !strings.Contains(retry.Messages[1].Content, `"answer": "8"`) {
		t.Error("retry should include the invalid output verbatim")
	}
	if !strings.Contains(retry.Messages[2].Content, "invalid") {
		t.Error("retry should describe the validation failure")
	}
}

func TestGenerate_InvalidTwiceFails(t *testing.T) {
	bad := json.RawMessage(`{"question":"","options":[],"answer":"","explanation":""}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: validOutput()}, // Won't be reached.
	)
	g := New(mock, testConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "Loops"})
	if err == nil {
		t.Fatal("expected error after corrective retry failed")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T", err)
	}
	if genErr.Topic != "Loops" {
		t.Errorf("expected topic Loops in error, got %q", genErr.Topic)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", mock.CallCount())
	}
}

func TestGenerate_TransportErrorNotCorrected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, testConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "Lists"})
	if err == nil {
		t.Fatal("expected error")
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		t.Fatal("transport failure must not become a GenerationError")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestGenerate_ExcludedTermRejected(t *testing.T) {
	bad := json.RawMessage(`{
		"question": "Which module provides Turtle Graphics?",
		"options": ["turtle", "math", "random", "os"],
		"answer": "turtle",
		"explanation": "The turtle module draws with a movable pen."
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: validOutput()},
	)
	g := New(mock, testConfig())

	q, err := g.Generate(context.Background(), GenerateInput{Topic: "Modules"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(strings.ToLower(q.Text), "turtle") {
		t.Error("excluded subject should have been rejected")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected corrective retry, got %d calls", mock.CallCount())
	}
}

func TestGenerate_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validOutput()},
	)
	g := New(mock, testConfig())

	_, err := g.Generate(context.Background(), GenerateInput{
		Topic:          "Functions",
		Context:        "A function is defined with the def keyword.",
		PriorQuestions: []string{"What does def do?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("expected the question schema on the request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{
		"Topic: Functions",
		"def keyword",
		"What does def do?",
		"turtle graphics",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrior_Limit(t *testing.T) {
	prior := []string{"q1", "q2", "q3", "q4"}
	got := buildPrior(prior, 2)
	if strings.Contains(got, "q1") || strings.Contains(got, "q2") {
		t.Errorf("expected only the most recent 2, got:\n%s", got)
	}
	if !strings.Contains(got, "q3") || !strings.Contains(got, "q4") {
		t.Errorf("expected q3 and q4, got:\n%s", got)
	}
}

func TestBuildPrior_Empty(t *testing.T) {
	if got := buildPrior(nil, 5); got != "None" {
		t.Errorf("expected None, got %q", got)
	}
}
