package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/pyquiz/internal/llm"
	"github.com/abhisek/pyquiz/internal/logging"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM provider configuration",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured provider with a round-trip request",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := logging.New()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		provider, err := llm.NewProvider(ctx, cfg, log)
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", provider.Model())

		start := time.Now()
		resp, err := provider.Complete(ctx, llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: "Reply with the single word: ok"},
			},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("round-trip failed: %w", err)
		}

		fmt.Printf("Latency:   %dms\n", time.Since(start).Milliseconds())
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		fmt.Println("OK")
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
