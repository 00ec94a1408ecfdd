package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/traitquiz/internal/report"
	"github.com/abhisek/traitquiz/internal/session"
	"github.com/abhisek/traitquiz/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results <slug>",
	Short: "Show the saved result for a quiz",
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
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		asJSON, _ := cmd.Flags().GetBool("json")
		percent, _ := cmd.Flags().GetBool("percent")

		if n, _ := cmd.Flags().GetInt("history"); n > 0 {
			history, err := st.Results().History(ctx, q.ID, n)
			if err != nil {
				return err
			}
			if asJSON {
				return writeHistoryJSON(cmd, history)
			}
			if len(history) == 0 {
				fmt.Fprintf(out, "No results for %s yet.\n", q.ID)
				return nil
			}
			fmt.Fprintf(out, "%-5s  %-19s  %-10s  %s\n", "SEQ", "COMPUTED", "VERSION", "AVERAGE")
			fmt.Fprintln(out, strings.Repeat("─", 50))
			for _, r := range history {
				avg := report.FormatNumber(r.Summary.Average())
				if percent || q.DisplayAsPercentage {
					avg = report.FormatPercent(r.Summary.Percentages(q.EffectiveScale()).Average())
				}
				fmt.Fprintf(out, "%-5d  %-19s  %-10s  %s\n",
					r.Sequence, r.ComputedAt.Local().Format("2006-01-02 15:04:05"), r.QuizVersion, avg)
			}
			return nil
		}

		s := session.Open(ctx, q, st.Sessions(cfg.HistoryKeep), session.Options{Logger: newLogger(cmd, cfg)})
		if len(s.Answers()) == 0 {
			fmt.Fprintf(out, "No answers recorded for %s yet.\n", q.ID)
			return nil
		}
		if asJSON {
			return writeSummaryJSON(out, q, s.Result(), percent)
		}

		fmt.Fprintf(out, "Computed %s", s.ComputedAt().Local().Format("2006-01-02 15:04:05"))
		if !s.FromCache() {
			fmt.Fprint(out, " (rescored)")
		}
		fmt.Fprint(out, "\n\n")
		_, err = lipgloss.Fprint(out, report.Render(q, s.Result(), report.Options{
			Percent: percent,
			Styles:  reportStyles(cmd),
		}))
		return err
	},
}

func init() {
	resultsCmd.Flags().Int("history", 0, "List the N most recent saved results instead")
	resultsCmd.Flags().Bool("percent", false, "Show scores as percentages")
	resultsCmd.Flags().Bool("json", false, "Print as JSON")
}

type historyEntry struct {
	ID          string          `json:"id"`
	Sequence    int64           `json:"sequence"`
	QuizVersion string          `json:"quizVersion,omitempty"`
	SessionID   string          `json:"sessionId,omitempty"`
	ComputedAt  string          `json:"computedAt"`
	Summary     json.RawMessage `json:"summary"`
}

func writeHistoryJSON(cmd *cobra.Command, history []store.Result) error {
	entries := make([]historyEntry, 0, len(history))
	for _, r := range history {
		summary, err := json.Marshal(r.Summary)
		if err != nil {
			return fmt.Errorf("encode result %s: %w", r.ID, err)
		}
		entries = append(entries, historyEntry{
			ID:          r.ID,
			Sequence:    r.Sequence,
			QuizVersion: r.QuizVersion,
			SessionID:   r.SessionID,
			ComputedAt:  r.ComputedAt.UTC().Format(time.RFC3339),
			Summary:     summary,
		})
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
