package scoring

import (
	"math"

	"github.com/abhisek/traitquiz/internal/quiz"
)

// ScoreStandard scores a quiz whose answers are single numbers.
//
// Non-numeric and non-finite answers are treated as unanswered. When
// answers repeat a question id, the last one wins.
func ScoreStandard(q *quiz.Quiz, answers []quiz.Answer, traits []quiz.Trait, opts Options) *Standard {
	values := make(map[string]float64, len(answers))
	for _, a := range answers {
		v, ok := a.Value.Float()
		if !ok || !finite(v) {
			delete(values, a.QuestionID)
			continue
		}
		values[a.QuestionID] = v
	}
	return scoreValues(q, values, traits, opts)
}

// scoreValues runs one weighted pass over raw answer values keyed by
// question id. It is shared by the standard pass and both ladder halves.
func scoreValues(q *quiz.Quiz, values map[string]float64, traits []quiz.Trait, opts Options) *Standard {
	scale := q.EffectiveScale()
	mid := scale.Mid()

	sums := make(map[string]float64)
	weightSums := make(map[string]float64)
	var totalWeighted, totalWeight float64

	for i := range q.Questions {
		qn := &q.Questions[i]
		if !qn.IsLikert() {
			continue
		}
		raw, ok := values[qn.ID]
		if !ok {
			continue
		}

		qs := qn.EffectiveScale(scale)
		mapped := MapLikert(raw, qs.Min, qs.Max)

		qWeight := 0.0
		for _, tw := range qn.TraitWeights {
			effective := mapped
			if tw.Reverse {
				effective = -mapped
			}
			w := math.Abs(tw.Weight)
			sums[tw.TraitID] += effective * tw.Weight
			weightSums[tw.TraitID] += w
			qWeight += w
		}
		if len(qn.TraitWeights) == 0 {
			qWeight = 1
		}
		totalWeighted += mapped * qWeight
		totalWeight += qWeight
	}

	out := &Standard{TraitScores: make(map[string]float64, len(traits))}
	var contributing []float64
	for _, t := range traits {
		ws := weightSums[t.ID]
		if ws <= 0 {
			out.TraitScores[t.ID] = mid
			continue
		}
		score := clamp(sums[t.ID]/ws+mid, scale.Min, scale.Max)
		out.TraitScores[t.ID] = score
		contributing = append(contributing, score)
	}

	out.Average = mid
	if avg, ok := mean(contributing); ok {
		out.Average = avg
	}

	if opts.IncludeOverall {
		overall := clamp(mid, scale.Min, scale.Max)
		if totalWeight > 0 {
			overall = clamp(totalWeighted/totalWeight+mid, scale.Min, scale.Max)
		}
		out.Overall = &overall
	}
	return out
}
