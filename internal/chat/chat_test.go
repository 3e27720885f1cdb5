package chat

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/pyquiz/internal/llm"
)

func TestAsk(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  Lists are mutable.\n"),
	})

	excerpts := []string{"Lists are mutable sequences.", "Append adds to the end."}
	answer, err := Ask(context.Background(), mock, excerpts, "Are lists mutable?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answer != "Lists are mutable." {
		t.Errorf("expected trimmed answer, got %q", answer)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("chat answers are free text, no schema expected")
	}
	if !strings.Contains(req.System, "strictly using the provided excerpts") {
		t.Error("system prompt should restrict answers to the excerpts")
	}
	user := req.Messages[0].Content
	for _, e := range excerpts {
		if !strings.Contains(user, e) {
			t.Errorf("user message missing excerpt %q", e)
		}
	}
	if !strings.Contains(user, "QUESTION: Are lists mutable?") {
		t.Error("user message missing the question")
	}
}

func TestAsk_NoExcerpts(t *testing.T) {
	mock := llm.NewMockProvider()
	if _, err := Ask(context.Background(), mock, nil, "anything"); err == nil {
		t.Fatal("expected error without study material")
	}
	if mock.CallCount() != 0 {
		t.Error("no request should be sent without material")
	}
}

func TestAsk_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails the call
	_, err := Ask(context.Background(), mock, []string{"excerpt"}, "q")
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
}
