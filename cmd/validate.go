package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/traitquiz/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path|slug>...",
	Short: "Check quiz documents against the schema and lint them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		failed := 0
		for _, ref := range args {
			q, err := loadQuiz(cfg, ref)
			if err != nil {
				failed++
				fmt.Fprintf(out, "FAIL  %s: %v\n", ref, err)
				continue
			}
			fmt.Fprintf(out, "ok    %s (%d questions, %d traits)\n", ref, len(q.Questions), len(q.Traits))
			for _, w := range quiz.Lint(q) {
				fmt.Fprintf(out, "warn  %s: %s\n", ref, w)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d quizzes invalid", failed, len(args))
		}
		return nil
	},
}
