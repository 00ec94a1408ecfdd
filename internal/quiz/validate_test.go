package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuiz() *Quiz {
	return &Quiz{
		ID:    "v",
		Title: "Valid",
		Questions: []Question{
			{ID: "q1", Type: TypeLikert, TraitWeights: []TraitWeight{{TraitID: "a", Weight: 1}}},
			{ID: "q2", Type: TypeOpen},
		},
		Traits: []Trait{{ID: "a", Name: "A"}},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(validQuiz()))
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	q := validQuiz()
	q.ScoringType = "ranked"
	q.LadderLabels = []string{"only one"}
	q.Traits = append(q.Traits, Trait{ID: "a", Thresholds: &Thresholds{Low: 0.5, High: -0.5}})
	q.Questions[0].Scale = &Scale{Min: 1, Max: 3, Labels: []string{"lo", "hi"}}

	err := Validate(q)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `unknown scoringType "ranked"`)
	assert.Contains(t, msg, "ladderLabels must have exactly 2 entries, got 1")
	assert.Contains(t, msg, `duplicate trait ID: "a"`)
	assert.Contains(t, msg, "thresholds low 0.5 above high -0.5")
	assert.Contains(t, msg, "has 2 labels, want 3")
}

func TestValidate_FractionalScaleWithLabels(t *testing.T) {
	q := validQuiz()
	q.Scale = &Scale{Min: 0, Max: 1.5, Labels: []string{"a", "b"}}
	err := Validate(q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "labels require an integer range")
}

func TestLint(t *testing.T) {
	q := &Quiz{
		ID: "lint",
		Questions: []Question{
			{ID: "q1", Type: TypeLikert, TraitWeights: []TraitWeight{{TraitID: "ghost", Weight: 1}}},
			{ID: "q2", Type: TypeLikert},
			{ID: "q3", Type: TypeSingleChoice, TraitWeights: []TraitWeight{{TraitID: "a", Weight: 1}}},
			{ID: "q4", Type: TypeLikert, TraitWeights: []TraitWeight{{TraitID: "b", Weight: 0}}},
		},
		Traits: []Trait{{ID: "a"}, {ID: "b"}},
	}

	warnings := Lint(q)

	assert.ElementsMatch(t, []string{
		`question "q1" references unknown trait "ghost"`,
		`likert question "q2" has no trait weights`,
		`question "q3" is single-choice; its trait weights are never scored`,
		`trait "a" has no contributing likert questions`,
		`trait "b" has no contributing likert questions`,
	}, warnings)
}

func TestLint_Clean(t *testing.T) {
	assert.Empty(t, Lint(validQuiz()))
}

func TestScaleLabel(t *testing.T) {
	s := Scale{Min: 1, Max: 3, Labels: []string{"low", "mid", "high"}}

	l, ok := s.Label(2)
	require.True(t, ok)
	assert.Equal(t, "mid", l)

	_, ok = s.Label(2.5)
	assert.False(t, ok)
	_, ok = s.Label(4)
	assert.False(t, ok)
	_, ok = s.Label(0)
	assert.False(t, ok)
}

func TestQuizDefaults(t *testing.T) {
	q := &Quiz{}
	assert.Equal(t, DefaultScale(), q.EffectiveScale())
	assert.Equal(t, ScoringStandard, q.Mode())
	assert.Equal(t, DefaultLadderLabels, q.Labels())
	assert.InDelta(t, 3, q.EffectiveScale().Mid(), 1e-9)

	_, ok := q.Question("missing")
	assert.False(t, ok)
}
