package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/traitquiz/internal/quiz"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List quizzes in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd, cfg)

		entries, err := quiz.NewCatalog(cfg.QuizDir).List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintf(out, "No quizzes found in %s.\n", cfg.QuizDir)
			return nil
		}

		fmt.Fprintf(out, "%-20s  %-32s  %-9s  %s\n", "SLUG", "TITLE", "QUESTIONS", "SCORING")
		fmt.Fprintln(out, strings.Repeat("─", 75))
		for _, e := range entries {
			q, err := quiz.Load(e.Path)
			if err != nil {
				logger.Warn("skipping invalid quiz", "slug", e.Slug, "error", err)
				fmt.Fprintf(out, "%-20s  %-32s  %-9s  %s\n", e.Slug, "(invalid)", "-", "-")
				continue
			}
			fmt.Fprintf(out, "%-20s  %-32s  %-9d  %s\n", e.Slug, truncate(q.Title, 32), len(q.Questions), q.Mode())
		}
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
