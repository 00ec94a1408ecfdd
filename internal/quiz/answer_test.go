package quiz

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnswers(t *testing.T) {
	in := `[
		{"questionId": "q1", "value": 4},
		{"questionId": "q2", "value": {"current": 2, "future": 5}},
		{"questionId": "q3", "value": null},
		{"questionId": "q4"},
		{"questionId": "q5", "value": "often"},
		{"questionId": "q6", "value": {"current": 2}},
		{"questionId": "q7", "value": ["a", "b"]},
		{"questionId": "q8", "value": "4"},
		{"questionId": "q9", "value": {"current": 5, "future": null}},
		{"questionId": "q10", "value": {"current": null, "future": null}}
	]`

	answers, err := DecodeAnswers(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, answers, 10)

	kinds := make(map[string]ValueKind, len(answers))
	for _, a := range answers {
		kinds[a.QuestionID] = a.Value.Kind
	}
	assert.Equal(t, map[string]ValueKind{
		"q1":  ValueNumber,
		"q2":  ValueLadder,
		"q3":  ValueNone,
		"q4":  ValueNone,
		"q5":  ValueOther,
		"q6":  ValueOther,
		"q7":  ValueOther,
		"q8":  ValueOther,
		"q9":  ValueOther,
		"q10": ValueOther,
	}, kinds)

	n, ok := answers[0].Value.Float()
	require.True(t, ok)
	assert.InDelta(t, 4, n, 1e-9)

	p, ok := answers[1].Value.Ladder()
	require.True(t, ok)
	assert.Equal(t, Pair{Current: 2, Future: 5}, p)

	_, ok = answers[1].Value.Float()
	assert.False(t, ok)
	assert.False(t, answers[2].Value.IsAnswered())
}

func TestDecodeAnswers_NotAnArray(t *testing.T) {
	_, err := DecodeAnswers(strings.NewReader(`{"q1": 4}`))
	assert.Error(t, err)
}

func TestValue_JSONKeepsOtherPayload(t *testing.T) {
	answers := []Answer{
		{QuestionID: "q1", Value: Number(3.5)},
		{QuestionID: "q2", Value: Ladder(1, 2)},
		{QuestionID: "q3", Value: Value{Kind: ValueOther, Raw: json.RawMessage(`{"choice":"b"}`)}},
		{QuestionID: "q4"},
	}

	b, err := json.Marshal(answers)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"questionId": "q1", "value": 3.5},
		{"questionId": "q2", "value": {"current": 1, "future": 2}},
		{"questionId": "q3", "value": {"choice": "b"}},
		{"questionId": "q4", "value": null}
	]`, string(b))

	var back []Answer
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, answers[:3], back[:3])
	assert.Equal(t, ValueNone, back[3].Value.Kind)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "4", Number(4).String())
	assert.Equal(t, "2.5:5", Ladder(2.5, 5).String())
	assert.Equal(t, "", Value{}.String())
}

func TestDedupe(t *testing.T) {
	answers := []Answer{
		{QuestionID: "q1", Value: Number(1)},
		{QuestionID: "q2", Value: Number(2)},
		{QuestionID: "q1", Value: Number(5)},
	}

	got := Dedupe(answers)

	assert.Equal(t, []Answer{
		{QuestionID: "q2", Value: Number(2)},
		{QuestionID: "q1", Value: Number(5)},
	}, got)
}

func TestParseAnswerArg(t *testing.T) {
	a, err := ParseAnswerArg("q1=4")
	require.NoError(t, err)
	assert.Equal(t, Answer{QuestionID: "q1", Value: Number(4)}, a)

	a, err = ParseAnswerArg(" q2 = 2.5 : 6 ")
	require.NoError(t, err)
	assert.Equal(t, Answer{QuestionID: "q2", Value: Ladder(2.5, 6)}, a)

	for _, bad := range []string{"q1", "=4", "q1=", "q1=four", "q1=2:x", "q1=NaN", "q1=+Inf", "q1=1:Inf"} {
		_, err := ParseAnswerArg(bad)
		assert.Error(t, err, bad)
	}
}
