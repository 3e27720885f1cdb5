package llm

import "testing"

func TestConfigFromEnv_ExplicitProvider(t *testing.T) {
	t.Setenv("PYQUIZ_LLM_PROVIDER", "anthropic")
	t.Setenv("PYQUIZ_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("PYQUIZ_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected provider anthropic, got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Fatalf("expected API key from env, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Fatalf("expected model claude-sonnet, got %q", cfg.Anthropic.Model)
	}
}

func TestConfigFromEnv_DiscoverFallback(t *testing.T) {
	t.Setenv("PYQUIZ_LLM_PROVIDER", "")
	t.Setenv("PYQUIZ_OPENAI_API_KEY", "")
	t.Setenv("PYQUIZ_ANTHROPIC_API_KEY", "")
	t.Setenv("PYQUIZ_GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-discovered")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected discovered provider anthropic, got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-discovered" {
		t.Fatalf("expected discovered API key, got %q", cfg.Anthropic.APIKey)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")
	t.Setenv("GEMINI_API_KEY", "sk-gemini")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a config")
	}
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai to win, got %q", cfg.Provider)
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, ok := DiscoverConfig()
	if ok {
		t.Fatal("expected no config without API keys")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "bard"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
