package scoring

import "github.com/abhisek/traitquiz/internal/quiz"

// Level is a coarse band for a trait score.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// DefaultThresholds apply to traits that do not declare their own.
var DefaultThresholds = quiz.Thresholds{Low: -0.33, High: 0.33}

// LevelPair holds the bands of both halves of a ladder score.
type LevelPair struct {
	Current Level `json:"current"`
	Future  Level `json:"future"`
}

// Normalize expresses score as an offset from the scale midpoint in units
// of half the range, so the scale endpoints map to -1 and 1.
func Normalize(score float64, scale quiz.Scale) float64 {
	half := (scale.Max - scale.Min) / 2
	if half == 0 {
		return 0
	}
	return (score - scale.Mid()) / half
}

// Classify bands a score on scale. Boundaries are inclusive on both ends.
func Classify(score float64, scale quiz.Scale, th quiz.Thresholds) Level {
	n := Normalize(score, scale)
	switch {
	case n <= th.Low:
		return LevelLow
	case n >= th.High:
		return LevelHigh
	default:
		return LevelMedium
	}
}

func thresholdsFor(t quiz.Trait) quiz.Thresholds {
	if t.Thresholds != nil {
		return *t.Thresholds
	}
	return DefaultThresholds
}

// ClassifyStandard bands every trait in a standard summary. Traits missing
// from the summary are classified at the midpoint.
func ClassifyStandard(s *Standard, traits []quiz.Trait, scale quiz.Scale) map[string]Level {
	out := make(map[string]Level, len(traits))
	for _, t := range traits {
		score, ok := s.TraitScores[t.ID]
		if !ok {
			score = scale.Mid()
		}
		out[t.ID] = Classify(score, scale, thresholdsFor(t))
	}
	return out
}

// ClassifyLadder bands both halves of every trait in a ladder summary.
func ClassifyLadder(l *Ladder, traits []quiz.Trait, scale quiz.Scale) map[string]LevelPair {
	out := make(map[string]LevelPair, len(traits))
	for _, t := range traits {
		p, ok := l.TraitScores[t.ID]
		if !ok {
			p = quiz.Pair{Current: scale.Mid(), Future: scale.Mid()}
		}
		th := thresholdsFor(t)
		out[t.ID] = LevelPair{
			Current: Classify(p.Current, scale, th),
			Future:  Classify(p.Future, scale, th),
		}
	}
	return out
}
