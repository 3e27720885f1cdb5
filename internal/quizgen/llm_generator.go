package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/pyquiz/internal/llm"
	"github.com/abhisek/pyquiz/internal/question"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Generate produces a single question for the given input. Invalid
// model output gets exactly one corrective retry carrying the bad
// output and the validation failure, then fails with *GenerationError.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*question.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	messages := []llm.Message{
		{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
	}

	var lastOutput json.RawMessage
	var lastErr error

	for attempt := 0; attempt < 2; attempt++ {
		req := llm.Request{
			System:      systemPrompt,
			Messages:    messages,
			Schema:      QuestionSchema,
			MaxTokens:   g.config.MaxTokens,
			Temperature: g.config.Temperature,
		}

		resp, err := g.provider.Complete(ctx, req)
		if err != nil {
			// Transport failures are not fixable by a corrective retry.
			return nil, fmt.Errorf("LLM generation failed: %w", err)
		}

		q, verr := g.buildQuestion(input.Topic, resp.Content)
		if verr == nil {
			shuffleOptions(q)
			return q, nil
		}

		lastOutput = resp.Content
		lastErr = verr

		messages = append(messages,
			llm.Message{Role: llm.RoleAssistant, Content: string(resp.Content)},
			llm.Message{Role: llm.RoleUser, Content: correctiveMessage(verr)},
		)
	}

	return nil, &GenerationError{Topic: input.Topic, Output: lastOutput, Reason: lastErr}
}

// buildQuestion parses and validates raw model output.
func (g *LLMGenerator) buildQuestion(topic string, raw json.RawMessage) (*question.Question, error) {
	var out questionOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	q := &question.Question{
		Topic:       topic,
		Text:        out.Question,
		Options:     out.Options,
		Answer:      out.Answer,
		Explanation: out.Explanation,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	norm := question.Normalize(q.Text)
	for _, term := range g.config.ExcludedTerms {
		if strings.Contains(norm, question.Normalize(term)) {
			return nil, fmt.Errorf("question covers excluded subject %q", term)
		}
	}

	return q, nil
}

// shuffleOptions randomizes option order. The answer invariant holds
// because Answer is matched by value, not position.
func shuffleOptions(q *question.Question) {
	rand.Shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})
}
