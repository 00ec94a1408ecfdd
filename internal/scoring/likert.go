// Package scoring turns quiz answers into trait scores.
//
// Answers are raw values on the question's effective scale. The engine
// centers each answer itself with MapLikert before weighting, so callers
// never pre-center values. Trait scores are reported back on the quiz's
// own scale: a weighted mean of centered contributions, shifted by the
// quiz midpoint and clamped to [min, max].
package scoring

import "math"

// MapLikert returns v as a signed offset from the midpoint of [min, max].
// Values outside the range are not rejected; they center out of range.
func MapLikert(v, min, max float64) float64 {
	return v - (min+max)/2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func mean(vs []float64) (float64, bool) {
	if len(vs) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs)), true
}
