package quiz

import (
	"fmt"
	"math"
	"strings"
)

// Validate performs all structural checks on a decoded quiz.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(q *Quiz) error {
	var errs []string

	if q.Scale != nil {
		errs = append(errs, checkScale("quiz scale", *q.Scale)...)
	}

	switch q.ScoringType {
	case "", ScoringStandard, ScoringLadder:
	default:
		errs = append(errs, fmt.Sprintf("unknown scoringType %q", q.ScoringType))
	}
	if q.LadderLabels != nil && len(q.LadderLabels) != 2 {
		errs = append(errs, fmt.Sprintf("ladderLabels must have exactly 2 entries, got %d", len(q.LadderLabels)))
	}

	questionIDs := make(map[string]bool, len(q.Questions))
	for _, qn := range q.Questions {
		if questionIDs[qn.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", qn.ID))
		}
		questionIDs[qn.ID] = true
		if qn.Scale != nil {
			errs = append(errs, checkScale(fmt.Sprintf("question %q scale", qn.ID), *qn.Scale)...)
		}
	}

	traitIDs := make(map[string]bool, len(q.Traits))
	for _, t := range q.Traits {
		if traitIDs[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate trait ID: %q", t.ID))
		}
		traitIDs[t.ID] = true
		if t.Thresholds != nil && t.Thresholds.Low > t.Thresholds.High {
			errs = append(errs, fmt.Sprintf("trait %q: thresholds low %g above high %g", t.ID, t.Thresholds.Low, t.Thresholds.High))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("quiz validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func checkScale(prefix string, s Scale) []string {
	var errs []string
	if !(s.Min < s.Max) {
		errs = append(errs, fmt.Sprintf("%s: min %g must be below max %g", prefix, s.Min, s.Max))
		return errs
	}
	if len(s.Labels) == 0 {
		return errs
	}
	span := s.Max - s.Min
	if span != math.Trunc(span) {
		errs = append(errs, fmt.Sprintf("%s: labels require an integer range, got %g..%g", prefix, s.Min, s.Max))
		return errs
	}
	if want := int(span) + 1; len(s.Labels) != want {
		errs = append(errs, fmt.Sprintf("%s: has %d labels, want %d", prefix, len(s.Labels), want))
	}
	return errs
}

// Lint returns non-fatal observations about a quiz: references the scoring
// engine tolerates but that usually indicate an authoring mistake.
func Lint(q *Quiz) []string {
	var warnings []string

	traitIDs := make(map[string]bool, len(q.Traits))
	for _, t := range q.Traits {
		traitIDs[t.ID] = true
	}

	contributing := make(map[string]bool)
	for _, qn := range q.Questions {
		if !qn.IsLikert() {
			if len(qn.TraitWeights) > 0 {
				warnings = append(warnings, fmt.Sprintf("question %q is %s; its trait weights are never scored", qn.ID, qn.Type))
			}
			continue
		}
		if len(qn.TraitWeights) == 0 {
			warnings = append(warnings, fmt.Sprintf("likert question %q has no trait weights", qn.ID))
		}
		for _, tw := range qn.TraitWeights {
			if !traitIDs[tw.TraitID] {
				warnings = append(warnings, fmt.Sprintf("question %q references unknown trait %q", qn.ID, tw.TraitID))
				continue
			}
			if tw.Weight != 0 {
				contributing[tw.TraitID] = true
			}
		}
	}

	for _, t := range q.Traits {
		if !contributing[t.ID] {
			warnings = append(warnings, fmt.Sprintf("trait %q has no contributing likert questions", t.ID))
		}
	}
	return warnings
}
