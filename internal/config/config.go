package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration for the traitquiz CLI.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default
	// resolved by the store.
	DBPath string

	// QuizDir is the catalog directory holding <slug>/quiz.json files.
	// Default: "./data/quizzes".
	QuizDir string

	// LogLevel is one of debug, info, warn, error. Default: "warn".
	LogLevel string

	// LogFormat is "text" or "json". Default: "text".
	LogFormat string

	// HistoryKeep bounds the stored result history per quiz. 0 keeps
	// everything. Default: 20.
	HistoryKeep int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		QuizDir:     "./data/quizzes",
		LogLevel:    "warn",
		LogFormat:   "text",
		HistoryKeep: 20,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv("TRAITQUIZ_DB"); p != "" {
		cfg.DBPath = p
	}
	if d := os.Getenv("TRAITQUIZ_QUIZZES"); d != "" {
		cfg.QuizDir = d
	}
	if l := os.Getenv("TRAITQUIZ_LOG_LEVEL"); l != "" {
		cfg.LogLevel = l
	}
	if f := os.Getenv("TRAITQUIZ_LOG_FORMAT"); f != "" {
		cfg.LogFormat = f
	}
	if k := os.Getenv("TRAITQUIZ_HISTORY_KEEP"); k != "" {
		n, err := strconv.Atoi(k)
		if err != nil {
			return cfg, fmt.Errorf("TRAITQUIZ_HISTORY_KEEP: %w", err)
		}
		cfg.HistoryKeep = n
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.LogFormat)
	}
	if c.HistoryKeep < 0 {
		return fmt.Errorf("history keep must not be negative, got %d", c.HistoryKeep)
	}
	if c.QuizDir == "" {
		return fmt.Errorf("quiz directory is required")
	}
	return nil
}
