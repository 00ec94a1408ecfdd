package store

import (
	"context"
	"errors"

	"github.com/abhisek/traitquiz/internal/quiz"
	"github.com/abhisek/traitquiz/internal/session"
)

// Sessions adapts the store to a session.Persister. Each saved result is
// appended to the history, which is then pruned to the newest keep
// entries; keep <= 0 keeps everything.
func (s *Store) Sessions(keep int) session.Persister {
	return &sessionPersister{answers: s.Answers(), results: s.Results(), keep: keep}
}

type sessionPersister struct {
	answers AnswerRepo
	results ResultRepo
	keep    int
}

func (p *sessionPersister) LoadAnswers(ctx context.Context, quizID string) ([]quiz.Answer, error) {
	return p.answers.Load(ctx, quizID)
}

func (p *sessionPersister) SaveAnswers(ctx context.Context, quizID string, answers []quiz.Answer) error {
	return p.answers.Save(ctx, quizID, answers)
}

func (p *sessionPersister) LoadResult(ctx context.Context, quizID string) (*session.Saved, error) {
	res, err := p.results.Latest(ctx, quizID)
	if err != nil || res == nil {
		return nil, err
	}
	return &session.Saved{
		QuizVersion: res.QuizVersion,
		SessionID:   res.SessionID,
		ComputedAt:  res.ComputedAt,
		Summary:     res.Summary,
	}, nil
}

func (p *sessionPersister) SaveResult(ctx context.Context, quizID string, saved *session.Saved) error {
	err := p.results.Save(ctx, &Result{
		QuizID:      quizID,
		QuizVersion: saved.QuizVersion,
		SessionID:   saved.SessionID,
		ComputedAt:  saved.ComputedAt,
		Summary:     saved.Summary,
	})
	if err != nil {
		return err
	}
	if p.keep > 0 {
		return p.results.Prune(ctx, quizID, p.keep)
	}
	return nil
}

func (p *sessionPersister) Clear(ctx context.Context, quizID string) error {
	return errors.Join(
		p.answers.Clear(ctx, quizID),
		p.results.Clear(ctx, quizID),
	)
}
