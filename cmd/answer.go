package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/traitquiz/internal/quiz"
	"github.com/abhisek/traitquiz/internal/report"
	"github.com/abhisek/traitquiz/internal/session"
)

var answerCmd = &cobra.Command{
	Use:   "answer <slug> <question>=<value>...",
	Short: "Record answers and show the updated result",
	Long: `Record one or more answers for a quiz and rescore it.

Values are numbers for standard quizzes (q1=4) and current:future pairs for
ladder quizzes (q1=2:5). An empty value (q1=) is rejected; use reset to
start over.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		q, err := loadQuiz(cfg, args[0])
		if err != nil {
			return err
		}

		answers := make([]quiz.Answer, 0, len(args)-1)
		for _, arg := range args[1:] {
			a, err := quiz.ParseAnswerArg(arg)
			if err != nil {
				return err
			}
			answers = append(answers, a)
		}

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		s := session.Open(ctx, q, st.Sessions(cfg.HistoryKeep), session.Options{Logger: newLogger(cmd, cfg)})
		if err := s.RecordAll(ctx, answers); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		p := s.Progress()
		fmt.Fprintf(out, "Answered %d of %d questions.\n\n", p.Answered, p.Total)
		_, err = lipgloss.Fprint(out, report.Render(q, s.Result(), report.Options{Styles: reportStyles(cmd)}))
		return err
	},
}
