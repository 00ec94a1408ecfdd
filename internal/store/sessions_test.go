package store

import (
	"context"
	"testing"

	"github.com/abhisek/traitquiz/internal/quiz"
	"github.com/abhisek/traitquiz/internal/session"
)

func sessionQuiz(version string) *quiz.Quiz {
	return &quiz.Quiz{
		ID:      "personality",
		Version: version,
		Questions: []quiz.Question{
			{ID: "q1", Type: quiz.TypeLikert, TraitWeights: []quiz.TraitWeight{{TraitID: "open", Weight: 1}}},
			{ID: "q2", Type: quiz.TypeLikert, TraitWeights: []quiz.TraitWeight{{TraitID: "open", Weight: 1}}},
		},
		Traits: []quiz.Trait{{ID: "open", Name: "Openness"}},
	}
}

func TestSessionsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := s.Sessions(3)

	first := session.Open(ctx, sessionQuiz("1.0.0"), p, session.Options{})
	for _, v := range []float64{1, 2, 3, 4, 5} {
		if err := first.Record(ctx, "q1", quiz.Number(v)); err != nil {
			t.Fatalf("record %v: %v", v, err)
		}
	}

	second := session.Open(ctx, sessionQuiz("1.0.0"), p, session.Options{})
	if !second.FromCache() {
		t.Error("expected cached result on reopen")
	}
	if got := second.Result().Standard.TraitScores["open"]; got != 5 {
		t.Errorf("open = %v, want 5", got)
	}
	if len(second.Answers()) != 1 {
		t.Errorf("answers = %d, want 1", len(second.Answers()))
	}

	history, err := s.Results().History(ctx, "personality", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Errorf("history = %d, want 3 after pruning", len(history))
	}
	if history[0].SessionID != first.ID {
		t.Errorf("session id = %q, want %q", history[0].SessionID, first.ID)
	}
}

func TestSessionsVersionBump(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := s.Sessions(0)

	first := session.Open(ctx, sessionQuiz("1.0.0"), p, session.Options{})
	if err := first.Record(ctx, "q1", quiz.Number(4)); err != nil {
		t.Fatalf("record: %v", err)
	}

	bumped := session.Open(ctx, sessionQuiz("1.1.0"), p, session.Options{})
	if bumped.FromCache() {
		t.Error("expected recompute after version bump")
	}

	latest, err := s.Results().Latest(ctx, "personality")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.QuizVersion != "1.1.0" {
		t.Errorf("latest version = %q, want 1.1.0", latest.QuizVersion)
	}
}

func TestSessionsReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := s.Sessions(0)

	sess := session.Open(ctx, sessionQuiz("1.0.0"), p, session.Options{})
	if err := sess.Record(ctx, "q2", quiz.Number(2)); err != nil {
		t.Fatalf("record: %v", err)
	}
	sess.Reset(ctx)

	answers, _ := s.Answers().Load(ctx, "personality")
	if len(answers) != 0 {
		t.Errorf("answers after reset = %d, want 0", len(answers))
	}
	latest, _ := s.Results().Latest(ctx, "personality")
	if latest != nil {
		t.Errorf("latest after reset = %+v, want nil", latest)
	}
}
