package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the shape of an answer value.
type ValueKind int

const (
	ValueNone   ValueKind = iota // unanswered (missing or null)
	ValueNumber                  // a single numeric answer
	ValueLadder                  // a well-formed {current, future} pair
	ValueOther                   // anything else: text, choices, malformed pairs
)

// Pair holds the two halves of a ladder answer or ladder score.
type Pair struct {
	Current float64 `json:"current"`
	Future  float64 `json:"future"`
}

// Value is a decoded answer value. Other keeps the raw JSON so non-scoring
// answers survive a persistence round trip.
type Value struct {
	Kind   ValueKind
	Number float64
	Pair   Pair
	Raw    json.RawMessage
}

// Number returns a numeric answer value.
func Number(v float64) Value {
	return Value{Kind: ValueNumber, Number: v}
}

// Ladder returns a ladder answer value.
func Ladder(current, future float64) Value {
	return Value{Kind: ValueLadder, Pair: Pair{Current: current, Future: future}}
}

// Float returns the numeric answer, if the value is one.
func (v Value) Float() (float64, bool) {
	if v.Kind != ValueNumber {
		return 0, false
	}
	return v.Number, true
}

// Ladder returns the ladder pair, if the value is one.
func (v Value) Ladder() (Pair, bool) {
	if v.Kind != ValueLadder {
		return Pair{}, false
	}
	return v.Pair, true
}

// IsAnswered reports whether any value is present.
func (v Value) IsAnswered() bool {
	return v.Kind != ValueNone
}

func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ValueLadder:
		return strconv.FormatFloat(v.Pair.Current, 'f', -1, 64) + ":" +
			strconv.FormatFloat(v.Pair.Future, 'f', -1, 64)
	case ValueOther:
		return string(v.Raw)
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		return json.Marshal(v.Number)
	case ValueLadder:
		return json.Marshal(v.Pair)
	case ValueOther:
		if len(v.Raw) == 0 {
			return []byte("null"), nil
		}
		return v.Raw, nil
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	*v = decodeValue(data)
	return nil
}

// decodeValue classifies raw JSON into a Value. It never fails: anything
// that is not a number or a complete numeric pair becomes ValueOther.
func decodeValue(data []byte) Value {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Value{}
	}
	raw := json.RawMessage(append([]byte(nil), trimmed...))

	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return Number(n)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		cur, okCur := numberField(obj, "current")
		fut, okFut := numberField(obj, "future")
		if okCur && okFut {
			return Ladder(cur, fut)
		}
	}
	return Value{Kind: ValueOther, Raw: raw}
}

func numberField(obj map[string]json.RawMessage, key string) (float64, bool) {
	raw, ok := obj[key]
	if !ok {
		return 0, false
	}
	// A null half means that side has not been answered yet.
	var n *float64
	if err := json.Unmarshal(raw, &n); err != nil || n == nil {
		return 0, false
	}
	return *n, true
}

// Answer is a respondent's value for one question.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      Value  `json:"value"`
}

// DecodeAnswers reads a JSON array of answers.
func DecodeAnswers(r io.Reader) ([]Answer, error) {
	var answers []Answer
	if err := json.NewDecoder(r).Decode(&answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return answers, nil
}

// Dedupe keeps the last answer for each question. The result is ordered by
// each question's final write.
func Dedupe(answers []Answer) []Answer {
	last := make(map[string]int, len(answers))
	for i, a := range answers {
		last[a.QuestionID] = i
	}
	out := make([]Answer, 0, len(last))
	for i, a := range answers {
		if last[a.QuestionID] == i {
			out = append(out, a)
		}
	}
	return out
}

// ParseAnswerArg parses a command-line answer of the form "q1=4" or, for
// ladder quizzes, "q1=2:5".
func ParseAnswerArg(arg string) (Answer, error) {
	id, raw, ok := strings.Cut(arg, "=")
	id = strings.TrimSpace(id)
	raw = strings.TrimSpace(raw)
	if !ok || id == "" || raw == "" {
		return Answer{}, fmt.Errorf("answer %q: want <question>=<value>", arg)
	}

	if cur, fut, isPair := strings.Cut(raw, ":"); isPair {
		c, err := parseFinite(cur)
		if err != nil {
			return Answer{}, fmt.Errorf("answer %q: current value: %w", arg, err)
		}
		f, err := parseFinite(fut)
		if err != nil {
			return Answer{}, fmt.Errorf("answer %q: future value: %w", arg, err)
		}
		return Answer{QuestionID: id, Value: Ladder(c, f)}, nil
	}

	n, err := parseFinite(raw)
	if err != nil {
		return Answer{}, fmt.Errorf("answer %q: %w", arg, err)
	}
	return Answer{QuestionID: id, Value: Number(n)}, nil
}

func parseFinite(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return n, nil
}
