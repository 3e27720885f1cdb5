// Package chat answers free-form questions about the loaded study
// material. Each answer is grounded on the excerpts most relevant to
// the question; the model is told to refuse anything outside them.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/pyquiz/internal/llm"
)

const systemPrompt = `You are a helpful assistant answering questions strictly using the provided excerpts from the study material. If the answer is not in the excerpts, say you don't know and suggest where in the material to look.`

// ContextChunks is how many excerpts are fed into each answer.
const ContextChunks = 4

// Presets are ready-made questions about the selected material.
var Presets = []string{
	"Summarize the material in 5-7 bullet points focusing on the main ideas.",
	"List the key concepts and define each in one sentence.",
	"Pick one important code example from the text and explain how it works step by step.",
	"What common mistakes or pitfalls should a learner avoid, according to this material?",
}

// Ask answers one question against the given excerpts.
func Ask(ctx context.Context, provider llm.Provider, excerpts []string, q string) (string, error) {
	if len(excerpts) == 0 {
		return "", fmt.Errorf("no study material to answer from")
	}

	var b strings.Builder
	b.WriteString("Use only this context to answer.\n\nEXCERPTS:\n")
	b.WriteString(strings.Join(excerpts, "\n\n---\n\n"))
	fmt.Fprintf(&b, "\n\nQUESTION: %s", q)

	resp, err := provider.Complete(llm.WithPurpose(ctx, "pdf-chat"), llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		MaxTokens:   500,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Content)), nil
}
