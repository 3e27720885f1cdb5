package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a chat-completion LLM backend.
type Provider interface {
	// Complete sends one request and returns the model output. When the
	// request carries a Schema, the returned Content is JSON that has
	// already been validated against it.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Model returns the model identifier the provider is configured with.
	Model() string
}

// Request is a single chat-completion request.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Question generation uses a
	// short few-shot history plus one user turn.
	Messages []Message

	// Schema, when set, asks the provider for structured JSON output
	// conforming to it. When nil the Content is returned as raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero value means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model output for one request.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// had a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks tokens consumed by one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
