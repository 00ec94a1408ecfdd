package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_JSON(t *testing.T) {
	q, err := Load(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	assert.Equal(t, "sample", q.ID)
	assert.Equal(t, "1.0.0", q.Version)
	assert.Equal(t, ScoringStandard, q.Mode())
	require.Len(t, q.Questions, 3)
	assert.Equal(t, 2, q.LikertCount())

	// Omitted weight defaults to 1.
	assert.Equal(t, TraitWeight{TraitID: "extraversion", Weight: 1}, q.Questions[0].TraitWeights[0])
	assert.Equal(t, TraitWeight{TraitID: "extraversion", Weight: 2, Reverse: true}, q.Questions[1].TraitWeights[0])

	label, ok := q.EffectiveScale().Label(4)
	require.True(t, ok)
	assert.Equal(t, "Agree", label)
}

func TestLoad_YAML(t *testing.T) {
	q, err := Load(filepath.Join("testdata", "ladder.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ScoringLadder, q.Mode())
	assert.Equal(t, [2]string{"Today", "Next year"}, q.Labels())
	assert.Equal(t, Scale{Min: 1, Max: 7}, q.EffectiveScale())
	assert.InDelta(t, 1.5, q.Questions[0].TraitWeights[0].Weight, 1e-9)
	require.NotNil(t, q.Traits[0].Thresholds)
	assert.Equal(t, Thresholds{Low: -0.5, High: 0.5}, *q.Traits[0].Thresholds)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("quiz.toml")
	assert.Error(t, err)
}

func TestLoad_InvalidSetsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id": "x"}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var inv *ErrInvalidQuiz
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, path, inv.Source)
	assert.Contains(t, err.Error(), path)
}

func TestDecode_SchemaFailures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"id": `},
		{"missing questions", `{"id": "x", "title": "X"}`},
		{"unknown question type", `{"id": "x", "title": "X", "questions": [{"id": "q1", "text": "?", "type": "slider"}]}`},
		{"weight not a number", `{"id": "x", "title": "X", "questions": [{"id": "q1", "text": "?", "type": "likert", "trait_weights": [{"traitId": "t", "weight": "heavy"}]}]}`},
		{"unknown scoring type", `{"id": "x", "title": "X", "questions": [], "scoringType": "ranked"}`},
		{"three ladder labels", `{"id": "x", "title": "X", "questions": [], "ladderLabels": ["a", "b", "c"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc), FormatJSON)
			require.Error(t, err)
			var inv *ErrInvalidQuiz
			assert.True(t, errors.As(err, &inv))
		})
	}
}

func TestDecode_StructuralFailure(t *testing.T) {
	doc := `{
		"id": "x", "title": "X",
		"scale": {"min": 5, "max": 1},
		"questions": [
			{"id": "q1", "text": "?", "type": "likert"},
			{"id": "q1", "text": "?", "type": "likert"}
		]
	}`
	_, err := Decode([]byte(doc), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min 5 must be below max 1")
	assert.Contains(t, err.Error(), `duplicate question ID: "q1"`)
}

func TestDecode_InvalidYAML(t *testing.T) {
	_, err := Decode([]byte("id: [unterminated"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}
