package scoring

import "github.com/abhisek/traitquiz/internal/quiz"

// ScoreLadder scores a quiz whose answers are current/future pairs. Each
// half is scored independently as a standard quiz and the results are
// zipped back together per trait.
//
// An answer that is not a complete numeric pair is dropped from both halves.
func ScoreLadder(q *quiz.Quiz, answers []quiz.Answer, traits []quiz.Trait, opts Options) *Ladder {
	current := make(map[string]float64, len(answers))
	future := make(map[string]float64, len(answers))
	for _, a := range answers {
		p, ok := a.Value.Ladder()
		if !ok || !finite(p.Current) || !finite(p.Future) {
			delete(current, a.QuestionID)
			delete(future, a.QuestionID)
			continue
		}
		current[a.QuestionID] = p.Current
		future[a.QuestionID] = p.Future
	}

	cur := scoreValues(q, current, traits, opts)
	fut := scoreValues(q, future, traits, opts)

	out := &Ladder{
		TraitScores: make(map[string]quiz.Pair, len(traits)),
		Labels:      q.Labels(),
	}
	flat := make([]float64, 0, 2*len(traits))
	for _, t := range traits {
		p := quiz.Pair{Current: cur.TraitScores[t.ID], Future: fut.TraitScores[t.ID]}
		out.TraitScores[t.ID] = p
		flat = append(flat, p.Current, p.Future)
	}

	// Neutral traits stay in the flattened mean, unlike the standard average.
	out.Average = q.EffectiveScale().Mid()
	if avg, ok := mean(flat); ok {
		out.Average = avg
	}

	if opts.IncludeOverall && cur.Overall != nil && fut.Overall != nil {
		out.Overall = &quiz.Pair{Current: *cur.Overall, Future: *fut.Overall}
	}
	return out
}
