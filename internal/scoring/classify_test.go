package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/traitquiz/internal/quiz"
)

func TestNormalize(t *testing.T) {
	scale := quiz.Scale{Min: 1, Max: 5}
	assert.InDelta(t, -1, Normalize(1, scale), epsilon)
	assert.InDelta(t, 0, Normalize(3, scale), epsilon)
	assert.InDelta(t, 1, Normalize(5, scale), epsilon)
	assert.InDelta(t, 0, Normalize(3, quiz.Scale{Min: 3, Max: 3}), epsilon)
}

func TestClassify(t *testing.T) {
	scale := quiz.Scale{Min: 1, Max: 5}
	tests := []struct {
		score float64
		want  Level
	}{
		{1, LevelLow},
		{2.3, LevelLow},
		{2.5, LevelMedium},
		{3, LevelMedium},
		{3.5, LevelMedium},
		{3.7, LevelHigh},
		{5, LevelHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.score, scale, DefaultThresholds), "score %v", tt.score)
	}
}

func TestClassifyStandard_TraitThresholds(t *testing.T) {
	scale := quiz.DefaultScale()
	traits := []quiz.Trait{
		{ID: "a"},
		{ID: "b", Thresholds: &quiz.Thresholds{Low: -0.9, High: 0.9}},
		{ID: "missing"},
	}
	s := &Standard{TraitScores: map[string]float64{"a": 4, "b": 4}}

	got := ClassifyStandard(s, traits, scale)

	assert.Equal(t, LevelHigh, got["a"])
	assert.Equal(t, LevelMedium, got["b"])
	assert.Equal(t, LevelMedium, got["missing"])
}

func TestClassifyLadder(t *testing.T) {
	scale := quiz.DefaultScale()
	l := &Ladder{TraitScores: map[string]quiz.Pair{"a": {Current: 1, Future: 5}}}

	got := ClassifyLadder(l, []quiz.Trait{{ID: "a"}}, scale)

	assert.Equal(t, LevelPair{Current: LevelLow, Future: LevelHigh}, got["a"])
}

func TestSummaryJSON_Shapes(t *testing.T) {
	q := sampleQuiz()
	standard := ComputeTraitScores(q, []quiz.Answer{answer("q3", 4)}, q.Traits, Options{IncludeOverall: true})

	b, err := json.Marshal(standard)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "standard", raw["scoringType"])
	assert.Equal(t, 4.0, raw["traitScores"].(map[string]any)["t2"])
	assert.Equal(t, 4.0, raw["overall"])
	assert.NotContains(t, raw, "ladderLabels")

	q.ScoringType = quiz.ScoringLadder
	ladder := ComputeTraitScores(q, []quiz.Answer{{QuestionID: "q3", Value: quiz.Ladder(2, 4)}}, q.Traits, Options{IncludeOverall: true})

	b, err = json.Marshal(ladder)
	require.NoError(t, err)
	var back Summary
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, quiz.ScoringLadder, back.Type)
	require.NotNil(t, back.Ladder)
	assert.Equal(t, ladder.Ladder.TraitScores, back.Ladder.TraitScores)
	assert.Equal(t, *ladder.Ladder.Overall, *back.Ladder.Overall)
	assert.Equal(t, quiz.DefaultLadderLabels, back.Ladder.Labels)
}
