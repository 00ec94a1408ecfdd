package scoring

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/traitquiz/internal/quiz"
)

// Options tunes a scoring call.
type Options struct {
	// IncludeOverall also computes a score across all answered questions.
	IncludeOverall bool
}

// Standard is the result of scoring a standard quiz.
type Standard struct {
	TraitScores map[string]float64 `json:"traitScores"`
	Average     float64            `json:"average"`
	Overall     *float64           `json:"overall,omitempty"`
}

// Ladder is the result of scoring a ladder quiz: every score is a
// current/future pair.
type Ladder struct {
	TraitScores map[string]quiz.Pair `json:"traitScores"`
	Average     float64              `json:"average"`
	Overall     *quiz.Pair           `json:"overall,omitempty"`
	Labels      [2]string            `json:"ladderLabels"`
}

// Summary holds exactly one of Standard or Ladder, selected by Type.
type Summary struct {
	Type     quiz.ScoringType
	Standard *Standard
	Ladder   *Ladder
}

// Average returns the average of whichever variant is set.
func (s Summary) Average() float64 {
	if s.Ladder != nil {
		return s.Ladder.Average
	}
	if s.Standard != nil {
		return s.Standard.Average
	}
	return 0
}

type summaryJSON struct {
	ScoringType  quiz.ScoringType `json:"scoringType"`
	TraitScores  json.RawMessage  `json:"traitScores"`
	Average      float64          `json:"average"`
	Overall      json.RawMessage  `json:"overall,omitempty"`
	LadderLabels []string         `json:"ladderLabels,omitempty"`
}

func (s Summary) MarshalJSON() ([]byte, error) {
	var (
		out summaryJSON
		err error
	)
	out.ScoringType = s.Type
	switch {
	case s.Type == quiz.ScoringLadder && s.Ladder != nil:
		out.Average = s.Ladder.Average
		out.LadderLabels = s.Ladder.Labels[:]
		if out.TraitScores, err = json.Marshal(s.Ladder.TraitScores); err != nil {
			return nil, err
		}
		if s.Ladder.Overall != nil {
			if out.Overall, err = json.Marshal(s.Ladder.Overall); err != nil {
				return nil, err
			}
		}
	case s.Standard != nil:
		out.Average = s.Standard.Average
		if out.TraitScores, err = json.Marshal(s.Standard.TraitScores); err != nil {
			return nil, err
		}
		if s.Standard.Overall != nil {
			if out.Overall, err = json.Marshal(*s.Standard.Overall); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("summary of type %q has no scores", s.Type)
	}
	return json.Marshal(out)
}

func (s *Summary) UnmarshalJSON(data []byte) error {
	var in summaryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.ScoringType {
	case quiz.ScoringLadder:
		l := &Ladder{Average: in.Average, Labels: quiz.DefaultLadderLabels}
		if len(in.LadderLabels) == 2 {
			l.Labels = [2]string{in.LadderLabels[0], in.LadderLabels[1]}
		}
		if len(in.TraitScores) > 0 {
			if err := json.Unmarshal(in.TraitScores, &l.TraitScores); err != nil {
				return fmt.Errorf("decode ladder trait scores: %w", err)
			}
		}
		if len(in.Overall) > 0 {
			var p quiz.Pair
			if err := json.Unmarshal(in.Overall, &p); err != nil {
				return fmt.Errorf("decode ladder overall: %w", err)
			}
			l.Overall = &p
		}
		*s = Summary{Type: quiz.ScoringLadder, Ladder: l}
	case quiz.ScoringStandard, "":
		st := &Standard{Average: in.Average}
		if len(in.TraitScores) > 0 {
			if err := json.Unmarshal(in.TraitScores, &st.TraitScores); err != nil {
				return fmt.Errorf("decode trait scores: %w", err)
			}
		}
		if len(in.Overall) > 0 {
			var v float64
			if err := json.Unmarshal(in.Overall, &v); err != nil {
				return fmt.Errorf("decode overall: %w", err)
			}
			st.Overall = &v
		}
		*s = Summary{Type: quiz.ScoringStandard, Standard: st}
	default:
		return fmt.Errorf("unknown scoringType %q", in.ScoringType)
	}
	return nil
}
