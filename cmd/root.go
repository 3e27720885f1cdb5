package cmd

import (
	"fmt"

	"github.com/abhisek/pyquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pyquiz",
	Short: "AI-generated Python quizzes in your terminal",
	Long:  "PyQuiz — terminal quiz app that generates, stores, and scores multiple-choice Python questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PYQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("snapshot", "", "Path to a read-only JSON snapshot to use instead of the database")
	rootCmd.PersistentFlags().String("context-dir", "", "Directory of per-topic reference PDFs for grounded generation")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveStoreConfig builds the store config from flags: --snapshot
// selects the read-only JSON backend, otherwise SQLite via --db,
// PYQUIZ_DB, or the default XDG path.
func resolveStoreConfig(cmd *cobra.Command) (store.Config, error) {
	if p, _ := cmd.Flags().GetString("snapshot"); p != "" {
		return store.Config{Backend: store.BackendSnapshot, SnapshotPath: p}, nil
	}

	cfg := store.Config{Backend: store.BackendSQLite}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return store.Config{}, fmt.Errorf("create database directory: %w", err)
		}
		cfg.DBPath = p
	}
	return cfg, nil
}
