package cmd

import (
	"fmt"

	"github.com/abhisek/pyquiz/internal/export"
	"github.com/abhisek/pyquiz/internal/logging"
	"github.com/abhisek/pyquiz/internal/question"
	"github.com/abhisek/pyquiz/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored questions",
}

var exportSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export the question bank to a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		st, err := openExportStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := export.Snapshot(cmd.Context(), st, out)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d questions to %s\n", n, out)
		return nil
	},
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export questions to a printable PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		topic, _ := cmd.Flags().GetString("topic")

		st, err := openExportStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		qs, err := st.All(cmd.Context())
		if err != nil {
			return err
		}
		qs = filterByTopic(qs, topic)
		if len(qs) == 0 {
			return fmt.Errorf("no questions to export")
		}

		title := "PyQuiz Question Bank"
		if topic != "" {
			title = "PyQuiz: " + topic
		}
		if err := export.PDF(export.PDFDoc{Title: title, Questions: qs}, out); err != nil {
			return err
		}
		fmt.Printf("Wrote %d questions to %s\n", len(qs), out)
		return nil
	},
}

var exportMoodleCmd = &cobra.Command{
	Use:   "moodle",
	Short: "Export questions as Moodle XML",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		topic, _ := cmd.Flags().GetString("topic")
		category, _ := cmd.Flags().GetString("category")

		log, err := logging.New()
		if err != nil {
			return err
		}

		st, err := openExportStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		qs, err := st.All(cmd.Context())
		if err != nil {
			return err
		}
		qs = filterByTopic(qs, topic)

		n, err := export.Moodle(qs, category, out, log)
		if err != nil {
			return err
		}
		if skipped := len(qs) - n; skipped > 0 {
			fmt.Printf("Skipped %d invalid questions.\n", skipped)
		}
		fmt.Printf("Wrote %d questions to %s\n", n, out)
		return nil
	},
}

// openExportStore opens whichever backend the flags select; exports
// work from a snapshot as well as the live database.
func openExportStore(cmd *cobra.Command) (store.Store, error) {
	cfg, err := resolveStoreConfig(cmd)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func filterByTopic(qs []question.Question, topic string) []question.Question {
	if topic == "" {
		return qs
	}
	var out []question.Question
	for _, q := range qs {
		if q.Topic == topic {
			out = append(out, q)
		}
	}
	return out
}

func init() {
	exportSnapshotCmd.Flags().StringP("out", "o", export.DefaultSnapshotName, "Output file")

	exportPDFCmd.Flags().StringP("out", "o", "pyquiz_questions.pdf", "Output file")
	exportPDFCmd.Flags().StringP("topic", "t", "", "Only export questions for this topic")

	exportMoodleCmd.Flags().StringP("out", "o", "pyquiz_moodle.xml", "Output file")
	exportMoodleCmd.Flags().StringP("topic", "t", "", "Only export questions for this topic")
	exportMoodleCmd.Flags().StringP("category", "c", "", "Moodle category for the exported questions")

	exportCmd.AddCommand(exportSnapshotCmd)
	exportCmd.AddCommand(exportPDFCmd)
	exportCmd.AddCommand(exportMoodleCmd)
}
