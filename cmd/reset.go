package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/traitquiz/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset <slug>",
	Short: "Clear saved answers and results for a quiz",
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
		s := session.Open(ctx, q, st.Sessions(cfg.HistoryKeep), session.Options{Logger: newLogger(cmd, cfg)})
		s.Reset(ctx)
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared answers and results for %s.\n", q.ID)
		return nil
	},
}
