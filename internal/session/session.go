// Package session owns the answers of one respondent to one quiz and keeps
// the scored result in step with them.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"

	"github.com/abhisek/traitquiz/internal/quiz"
	"github.com/abhisek/traitquiz/internal/scoring"
)

// ErrUnknownQuestion is returned when an answer names a question the quiz
// does not have.
var ErrUnknownQuestion = errors.New("unknown question")

// ErrWrongShape is returned when a likert answer does not have the shape the
// quiz's scoring type expects: a number for standard quizzes, a
// current/future pair for ladder quizzes.
var ErrWrongShape = errors.New("answer does not match scoring type")

// Options configures a session.
type Options struct {
	// Logger receives storage failures. Defaults to slog.Default().
	Logger *slog.Logger

	// Now is the clock used to stamp results. Defaults to time.Now.
	Now func() time.Time
}

// Session is a respondent's working set of answers for a quiz. It is not
// safe for concurrent use.
type Session struct {
	ID string

	quiz    *quiz.Quiz
	store   Persister
	log     *slog.Logger
	now     func() time.Time
	answers []quiz.Answer

	summary    *scoring.Summary
	computedAt time.Time
	cached     bool
}

// Open restores the saved answers and cached result for q. A cached result
// computed for a different quiz version, or missing altogether, is
// recomputed from the answers. Storage failures are logged and never fail
// the call; p may be nil for a session without storage.
func Open(ctx context.Context, q *quiz.Quiz, p Persister, opts Options) *Session {
	if p == nil {
		p = nopPersister{}
	}
	s := &Session{
		ID:    uuid.NewString(),
		quiz:  q,
		store: p,
		log:   opts.Logger,
		now:   opts.Now,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.log = s.log.With("session_id", s.ID, "quiz_id", q.ID)

	answers, err := p.LoadAnswers(ctx, q.ID)
	if err != nil {
		s.warn("load_answers", err)
	}
	s.answers = quiz.Dedupe(answers)

	saved, err := p.LoadResult(ctx, q.ID)
	if err != nil {
		s.warn("load_result", err)
	}
	if saved != nil && saved.Summary != nil && !Stale(saved.QuizVersion, q.Version) && saved.Summary.Type == q.Mode() {
		s.summary = saved.Summary
		s.computedAt = saved.ComputedAt
		s.cached = true
		return s
	}

	if saved != nil {
		s.log.Debug("cached result is stale", "cached_version", saved.QuizVersion, "quiz_version", q.Version)
	}
	s.recompute()
	if len(s.answers) > 0 {
		s.saveResult(ctx)
	}
	return s
}

// Stale reports whether a result computed for quiz version cached is out
// of date for version current. Versions that are both semver (with or
// without a leading "v") are compared semantically, anything else
// verbatim.
func Stale(cached, current string) bool {
	c, cur := canonicalVersion(cached), canonicalVersion(current)
	if semver.IsValid(c) && semver.IsValid(cur) {
		return semver.Compare(c, cur) != 0
	}
	return cached != current
}

func canonicalVersion(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// Quiz returns the quiz being answered.
func (s *Session) Quiz() *quiz.Quiz {
	return s.quiz
}

// Result returns the current summary. It always reflects the current
// answers.
func (s *Session) Result() *scoring.Summary {
	return s.summary
}

// ComputedAt is when the current summary was computed.
func (s *Session) ComputedAt() time.Time {
	return s.computedAt
}

// FromCache reports whether the current summary was restored from storage
// rather than recomputed.
func (s *Session) FromCache() bool {
	return s.cached
}

// Answers returns a copy of the current answers, ordered by last write.
func (s *Session) Answers() []quiz.Answer {
	out := make([]quiz.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Record sets the answer for one question and rescores. An unanswered
// value removes the question's answer.
func (s *Session) Record(ctx context.Context, questionID string, v quiz.Value) error {
	return s.RecordAll(ctx, []quiz.Answer{{QuestionID: questionID, Value: v}})
}

// RecordAll applies several answers in order, then rescores and persists
// once. No change is made if any answer is rejected.
func (s *Session) RecordAll(ctx context.Context, answers []quiz.Answer) error {
	for _, a := range answers {
		if err := s.check(a); err != nil {
			return fmt.Errorf("record %q: %w", a.QuestionID, err)
		}
	}

	for _, a := range answers {
		s.answers = withoutQuestion(s.answers, a.QuestionID)
		if a.Value.IsAnswered() {
			s.answers = append(s.answers, a)
		}
	}
	s.update(ctx)
	return nil
}

// Replace swaps in a whole answer set and rescores. Later duplicates win.
// No change is made if any answer is rejected.
func (s *Session) Replace(ctx context.Context, answers []quiz.Answer) error {
	for _, a := range answers {
		if err := s.check(a); err != nil {
			return fmt.Errorf("replace %q: %w", a.QuestionID, err)
		}
	}

	deduped := quiz.Dedupe(answers)
	next := deduped[:0]
	for _, a := range deduped {
		if a.Value.IsAnswered() {
			next = append(next, a)
		}
	}
	s.answers = next
	s.update(ctx)
	return nil
}

// check rejects answers to unknown questions and likert answers the quiz's
// scoring type cannot score. Unanswered values always pass.
func (s *Session) check(a quiz.Answer) error {
	qn, ok := s.quiz.Question(a.QuestionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if !qn.IsLikert() || !a.Value.IsAnswered() {
		return nil
	}
	if !scorable(s.quiz.Mode(), a.Value) {
		return fmt.Errorf("%w: %s quiz, got %s", ErrWrongShape, s.quiz.Mode(), a.Value)
	}
	return nil
}

// scorable reports whether v has the shape mode scores.
func scorable(mode quiz.ScoringType, v quiz.Value) bool {
	if mode == quiz.ScoringLadder {
		return v.Kind == quiz.ValueLadder
	}
	return v.Kind == quiz.ValueNumber
}

// Reset discards all answers and stored results so the quiz can be taken
// again.
func (s *Session) Reset(ctx context.Context) {
	s.answers = nil
	if err := s.store.Clear(ctx, s.quiz.ID); err != nil {
		s.warn("clear", err)
	}
	s.recompute()
}

func (s *Session) update(ctx context.Context) {
	s.recompute()
	if err := s.store.SaveAnswers(ctx, s.quiz.ID, s.answers); err != nil {
		s.warn("save_answers", err)
	}
	s.saveResult(ctx)
}

func (s *Session) recompute() {
	s.summary = scoring.ComputeTraitScores(s.quiz, s.answers, s.quiz.Traits, scoring.Options{IncludeOverall: true})
	s.computedAt = s.now().UTC()
	s.cached = false
}

func (s *Session) saveResult(ctx context.Context) {
	err := s.store.SaveResult(ctx, s.quiz.ID, &Saved{
		QuizVersion: s.quiz.Version,
		SessionID:   s.ID,
		ComputedAt:  s.computedAt,
		Summary:     s.summary,
	})
	if err != nil {
		s.warn("save_result", err)
	}
}

func (s *Session) warn(op string, err error) {
	s.log.Warn("storage operation failed", "op", op, "error", err)
}

func withoutQuestion(answers []quiz.Answer, questionID string) []quiz.Answer {
	out := answers[:0]
	for _, a := range answers {
		if a.QuestionID != questionID {
			out = append(out, a)
		}
	}
	return out
}
