package scoring

import "github.com/abhisek/traitquiz/internal/quiz"

// ComputeTraitScores scores answers against q using the quiz's scoring
// type. traits selects which trait ids are reported; usually q.Traits.
func ComputeTraitScores(q *quiz.Quiz, answers []quiz.Answer, traits []quiz.Trait, opts Options) *Summary {
	switch q.Mode() {
	case quiz.ScoringLadder:
		return &Summary{Type: quiz.ScoringLadder, Ladder: ScoreLadder(q, answers, traits, opts)}
	default:
		return &Summary{Type: quiz.ScoringStandard, Standard: ScoreStandard(q, answers, traits, opts)}
	}
}
