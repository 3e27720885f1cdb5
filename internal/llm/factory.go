package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// NewProvider builds a Provider from configuration, wrapped with retry
// and request logging: caller -> retry -> logging -> base.
func NewProvider(ctx context.Context, cfg Config, log *logrus.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, log), cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from environment configuration.
func NewProviderFromEnv(ctx context.Context, log *logrus.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, log)
}
