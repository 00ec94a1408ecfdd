package scoring

import "github.com/abhisek/traitquiz/internal/quiz"

// ScoreToPercentage maps value from [min, max] onto [0, 100]. Values
// outside the range are clamped first. A degenerate scale yields 0.
func ScoreToPercentage(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	v := clamp(value, min, max)
	return (v - min) / (max - min) * 100
}

// TraitScoresToPercentages returns a copy of s with every score converted
// to a percentage of [min, max].
func TraitScoresToPercentages(s *Standard, min, max float64) *Standard {
	out := &Standard{
		TraitScores: make(map[string]float64, len(s.TraitScores)),
		Average:     ScoreToPercentage(s.Average, min, max),
	}
	for id, v := range s.TraitScores {
		out.TraitScores[id] = ScoreToPercentage(v, min, max)
	}
	if s.Overall != nil {
		o := ScoreToPercentage(*s.Overall, min, max)
		out.Overall = &o
	}
	return out
}

// LadderScoresToPercentages converts both halves of every ladder score.
func LadderScoresToPercentages(l *Ladder, min, max float64) *Ladder {
	out := &Ladder{
		TraitScores: make(map[string]quiz.Pair, len(l.TraitScores)),
		Average:     ScoreToPercentage(l.Average, min, max),
		Labels:      l.Labels,
	}
	for id, p := range l.TraitScores {
		out.TraitScores[id] = pairToPercentage(p, min, max)
	}
	if l.Overall != nil {
		o := pairToPercentage(*l.Overall, min, max)
		out.Overall = &o
	}
	return out
}

func pairToPercentage(p quiz.Pair, min, max float64) quiz.Pair {
	return quiz.Pair{
		Current: ScoreToPercentage(p.Current, min, max),
		Future:  ScoreToPercentage(p.Future, min, max),
	}
}

// Percentages returns a copy of the summary expressed in percentages of
// scale, preserving its shape.
func (s Summary) Percentages(scale quiz.Scale) *Summary {
	out := &Summary{Type: s.Type}
	if s.Standard != nil {
		out.Standard = TraitScoresToPercentages(s.Standard, scale.Min, scale.Max)
	}
	if s.Ladder != nil {
		out.Ladder = LadderScoresToPercentages(s.Ladder, scale.Min, scale.Max)
	}
	return out
}
