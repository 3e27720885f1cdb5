package cmd

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/pyquiz/internal/chat"
	"github.com/abhisek/pyquiz/internal/docctx"
	"github.com/abhisek/pyquiz/internal/llm"
	"github.com/abhisek/pyquiz/internal/logging"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask questions about a topic's study material",
	Long:  "Interactive Q&A over the reference PDFs in --context-dir. Answers come from the excerpts most relevant to each question.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		dir, _ := cmd.Flags().GetString("context-dir")
		if dir == "" {
			return fmt.Errorf("--context-dir is required for chat")
		}

		lib, err := docctx.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("load study material: %w", err)
		}

		topics := lib.Topics()
		sort.Strings(topics)
		if len(topics) == 0 {
			return fmt.Errorf("no PDFs found in %s", dir)
		}
		if topic == "" {
			return fmt.Errorf("--topic is required; available: %s", strings.Join(topics, ", "))
		}
		chunks := lib.Chunks(topic)
		if len(chunks) == 0 {
			return fmt.Errorf("no material for topic %q; available: %s", topic, strings.Join(topics, ", "))
		}

		log, err := logging.New()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, log)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		fmt.Printf("Chatting about %q (%d excerpts loaded). Type a question, a preset number, or \"exit\".\n\n", topic, len(chunks))
		for i, p := range chat.Presets {
			fmt.Printf("  %d. %s\n", i+1, p)
		}
		fmt.Println()

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			q := strings.TrimSpace(scanner.Text())
			if q == "" {
				continue
			}
			if q == "exit" || q == "quit" {
				break
			}
			if n, err := strconv.Atoi(q); err == nil && n >= 1 && n <= len(chat.Presets) {
				q = chat.Presets[n-1]
				fmt.Println(q)
			}

			excerpts := docctx.TopChunks(chunks, q, chat.ContextChunks)
			answer, err := chat.Ask(ctx, provider, excerpts, q)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("\n%s\n\n", answer)
		}
		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().StringP("topic", "t", "", "Topic whose study material to chat about")
}
