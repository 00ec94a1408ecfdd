package session

import (
	"context"
	"time"

	"github.com/abhisek/traitquiz/internal/quiz"
	"github.com/abhisek/traitquiz/internal/scoring"
)

// Saved is a scored result as kept by a Persister.
type Saved struct {
	QuizVersion string
	SessionID   string
	ComputedAt  time.Time
	Summary     *scoring.Summary
}

// Persister stores answers and results between sessions. Every call is
// best effort: a session logs failures and carries on with its in-memory
// state.
type Persister interface {
	// LoadAnswers returns the saved answers for a quiz, oldest first.
	LoadAnswers(ctx context.Context, quizID string) ([]quiz.Answer, error)

	// SaveAnswers replaces the saved answers for a quiz.
	SaveAnswers(ctx context.Context, quizID string, answers []quiz.Answer) error

	// LoadResult returns the cached result, or nil if there is none.
	LoadResult(ctx context.Context, quizID string) (*Saved, error)

	// SaveResult caches a newly computed result.
	SaveResult(ctx context.Context, quizID string, res *Saved) error

	// Clear forgets answers and results for a quiz.
	Clear(ctx context.Context, quizID string) error
}

// nopPersister is used when a session is opened without storage.
type nopPersister struct{}

func (nopPersister) LoadAnswers(context.Context, string) ([]quiz.Answer, error) { return nil, nil }
func (nopPersister) SaveAnswers(context.Context, string, []quiz.Answer) error { return nil }
func (nopPersister) LoadResult(context.Context, string) (*Saved, error) { return nil, nil }
func (nopPersister) SaveResult(context.Context, string, *Saved) error { return nil }
func (nopPersister) Clear(context.Context, string) error { return nil }
