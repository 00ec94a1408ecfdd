package store

import (
	"context"
	"time"

	"github.com/abhisek/traitquiz/internal/quiz"
	"github.com/abhisek/traitquiz/internal/scoring"
)

// Result is a scored summary as persisted.
type Result struct {
	ID          string // history entry id
	Sequence    int64
	QuizID      string
	QuizVersion string
	SessionID   string
	ComputedAt  time.Time
	Summary     *scoring.Summary
}

// AnswerRepo manages saved answers. All errors are *Error.
type AnswerRepo interface {
	// Save replaces the saved answers for a quiz.
	Save(ctx context.Context, quizID string, answers []quiz.Answer) error

	// Load returns the saved answers in their saved order.
	Load(ctx context.Context, quizID string) ([]quiz.Answer, error)

	// Clear deletes all saved answers for a quiz.
	Clear(ctx context.Context, quizID string) error
}

// ResultRepo manages computed results. All errors are *Error.
type ResultRepo interface {
	// Save records res as the latest result for its quiz and appends it
	// to the history. ID, Sequence and a zero ComputedAt are filled in.
	Save(ctx context.Context, res *Result) error

	// Latest returns the most recent result, or nil if none exist.
	Latest(ctx context.Context, quizID string) (*Result, error)

	// History returns up to limit results, newest first. A limit of 0
	// returns all of them.
	History(ctx context.Context, quizID string, limit int) ([]Result, error)

	// Prune deletes all but the N most recent history entries.
	Prune(ctx context.Context, quizID string, keep int) error

	// Clear deletes the latest result and the history for a quiz.
	Clear(ctx context.Context, quizID string) error
}
