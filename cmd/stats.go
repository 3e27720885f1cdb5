package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/pyquiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question bank counts per topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveStoreConfig(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		counts, err := st.TopicCounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("query topic counts: %w", err)
		}

		if len(counts) == 0 {
			fmt.Println("The question bank is empty.")
			return nil
		}

		topics := make([]string, 0, len(counts))
		for t := range counts {
			topics = append(topics, t)
		}
		sort.Strings(topics)

		fmt.Printf("%-48s  %9s\n", "Topic", "Questions")
		fmt.Println(strings.Repeat("─", 60))

		total := 0
		for _, t := range topics {
			fmt.Printf("%-48s  %9d\n", t, counts[t])
			total += counts[t]
		}

		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-48s  %9d\n", "TOTAL", total)
		return nil
	},
}
