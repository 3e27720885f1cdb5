package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/pyquiz/internal/docctx"
	"github.com/abhisek/pyquiz/internal/llm"
	"github.com/abhisek/pyquiz/internal/logging"
	"github.com/abhisek/pyquiz/internal/quizgen"
	"github.com/abhisek/pyquiz/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Batch-generate questions into the question bank",
	Long:  "Generate N fresh questions for a topic and save them to the live database, skipping duplicates.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		if count <= 0 {
			return fmt.Errorf("--count must be positive")
		}

		log, err := logging.New()
		if err != nil {
			return err
		}

		cfg, err := resolveStoreConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Backend == store.BackendSnapshot {
			return fmt.Errorf("generate needs the live database, not a snapshot")
		}

		st, err := store.Open(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, log)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		gen := quizgen.New(provider, quizgen.DefaultConfig())

		var docContext string
		if dir, _ := cmd.Flags().GetString("context-dir"); dir != "" {
			lib, err := docctx.LoadDir(dir)
			if err != nil {
				return fmt.Errorf("load study material: %w", err)
			}
			docContext = lib.RandomChunk(topic)
		}

		fmt.Printf("Generating %d questions for %q...\n", count, topic)

		qs, genErr := quizgen.GenerateBatch(ctx, gen, quizgen.BatchInput{
			Topic:   topic,
			Context: docContext,
			Count:   count,
			IsDuplicate: func(ctx context.Context, text string) (bool, error) {
				return st.IsDuplicate(ctx, text)
			},
		})

		saved := 0
		for _, q := range qs {
			if err := st.Save(ctx, q); err != nil {
				return fmt.Errorf("save question: %w", err)
			}
			saved++
			fmt.Printf("  [%d/%d] %s\n", saved, count, q.Text)
		}

		if genErr != nil {
			return fmt.Errorf("saved %d of %d before failing: %w", saved, count, genErr)
		}

		fmt.Printf("Saved %d questions.\n", saved)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Topic to generate questions for")
	generateCmd.Flags().IntP("count", "n", 10, "Number of questions to generate")
}
