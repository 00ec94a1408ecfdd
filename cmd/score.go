package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/traitquiz/internal/quiz"
	"github.com/abhisek/traitquiz/internal/report"
	"github.com/abhisek/traitquiz/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score <path|slug>",
	Short: "Score a file of answers without saving anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		q, err := loadQuiz(cfg, args[0])
		if err != nil {
			return err
		}

		answersPath, _ := cmd.Flags().GetString("answers")
		answers, err := readAnswers(cmd, answersPath)
		if err != nil {
			return err
		}

		summary := scoring.ComputeTraitScores(q, answers, q.Traits, scoring.Options{IncludeOverall: true})

		percent, _ := cmd.Flags().GetBool("percent")
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeSummaryJSON(cmd.OutOrStdout(), q, summary, percent)
		}
		_, err = lipgloss.Fprint(cmd.OutOrStdout(), report.Render(q, summary, report.Options{
			Percent: percent,
			Styles:  reportStyles(cmd),
		}))
		return err
	},
}

func init() {
	scoreCmd.Flags().String("answers", "", "JSON file of answers, or - for stdin")
	scoreCmd.Flags().Bool("percent", false, "Show scores as percentages")
	scoreCmd.Flags().Bool("json", false, "Print the summary as JSON")
	_ = scoreCmd.MarkFlagRequired("answers")
}

func readAnswers(cmd *cobra.Command, path string) ([]quiz.Answer, error) {
	if path == "-" {
		return quiz.DecodeAnswers(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()
	return quiz.DecodeAnswers(f)
}

// writeSummaryJSON prints s, converted to percentages when asked to or
// when the quiz displays percentages.
func writeSummaryJSON(w io.Writer, q *quiz.Quiz, s *scoring.Summary, percent bool) error {
	if percent || q.DisplayAsPercentage {
		s = s.Percentages(q.EffectiveScale())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
