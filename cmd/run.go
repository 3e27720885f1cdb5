package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/pyquiz/internal/app"
	"github.com/abhisek/pyquiz/internal/docctx"
	"github.com/abhisek/pyquiz/internal/llm"
	"github.com/abhisek/pyquiz/internal/logging"
	"github.com/abhisek/pyquiz/internal/quizgen"
	"github.com/abhisek/pyquiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	log, err := logging.New()
	if err != nil {
		return err
	}

	cfg, err := resolveStoreConfig(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := app.Deps{
		Store:   st,
		Log:     log,
		Backend: string(cfg.Backend),
	}
	if deps.Backend == "" {
		deps.Backend = string(store.BackendSQLite)
	}

	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question generation will be unavailable.")
	} else {
		deps.Generator = quizgen.New(provider, quizgen.DefaultConfig())
	}

	if dir, _ := cmd.Flags().GetString("context-dir"); dir != "" {
		lib, err := docctx.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("load study material: %w", err)
		}
		deps.Library = lib
	}

	return app.Run(deps)
}
