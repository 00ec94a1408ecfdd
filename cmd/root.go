package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/traitquiz/internal/config"
	"github.com/abhisek/traitquiz/internal/logging"
	"github.com/abhisek/traitquiz/internal/quiz"
	"github.com/abhisek/traitquiz/internal/report"
	"github.com/abhisek/traitquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "traitquiz",
	Short:         "Score Likert and ladder trait quizzes",
	Long:          "Traitquiz loads quiz definitions, records answers and scores them into per-trait results.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRAITQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("quizzes", "", "Quiz catalog directory (overrides TRAITQUIZ_QUIZZES env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides TRAITQUIZ_LOG_LEVEL env var)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers flags over environment over defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if d, _ := cmd.Flags().GetString("quizzes"); d != "" {
		cfg.QuizDir = d
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	return logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
}

// resolveDBPath returns the configured database path, falling back to the
// default XDG path, and makes sure its directory exists.
func resolveDBPath(cfg config.Config) (string, error) {
	p := cfg.DBPath
	if p == "" {
		var err error
		if p, err = store.DefaultDBPath(); err != nil {
			return "", err
		}
	}
	return p, store.EnsureDir(p)
}

func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadQuiz accepts either a path to a quiz document or a catalog slug.
func loadQuiz(cfg config.Config, ref string) (*quiz.Quiz, error) {
	if _, err := quiz.FormatFromPath(ref); err == nil {
		if info, err := os.Stat(ref); err == nil && !info.IsDir() {
			return quiz.Load(ref)
		}
	}
	if filepath.Base(ref) != ref {
		return quiz.Load(ref)
	}
	return quiz.NewCatalog(cfg.QuizDir).Load(ref)
}

func reportStyles(cmd *cobra.Command) report.Styles {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return report.PlainStyles()
	}
	return report.DefaultStyles()
}
