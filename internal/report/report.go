// Package report formats scored summaries for the terminal.
package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/traitquiz/internal/quiz"
	"github.com/abhisek/traitquiz/internal/scoring"
)

// NotAvailable is shown for a trait with no score.
const NotAvailable = "N/A"

// DefaultBarWidth is the bar width used when Options.BarWidth is zero.
const DefaultBarWidth = 20

// Options tunes rendering.
type Options struct {
	// Percent forces percentages even when the quiz does not ask for
	// them.
	Percent bool

	// BarWidth is the width of score bars. Negative hides them.
	BarWidth int

	Styles Styles
}

// FormatNumber prints integers plainly and everything else with two
// decimals.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatFraction prints a score as "value/max".
func FormatFraction(v float64, scale quiz.Scale) string {
	return FormatNumber(v) + "/" + FormatNumber(scale.Max)
}

// FormatPercent prints a percentage rounded to a whole number.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(p)))
}

type row struct {
	trait quiz.Trait
	ok    bool
	key   float64

	value quiz.Pair // Current only for standard summaries
	level scoring.LevelPair
}

// Render formats s for quiz q.
func Render(q *quiz.Quiz, s *scoring.Summary, opts Options) string {
	scale := q.EffectiveScale()
	percent := opts.Percent || q.DisplayAsPercentage
	width := opts.BarWidth
	if width == 0 {
		width = DefaultBarWidth
	}
	st := opts.Styles

	var b strings.Builder
	b.WriteString(st.Title.Render(q.Title))
	b.WriteString("\n")
	if q.Description != "" {
		b.WriteString(st.Subtitle.Render(q.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	f := formatter{scale: scale, percent: percent}
	rows := buildRows(q, s, scale)
	nameWidth := 0
	for _, r := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(r.trait.Name))
	}

	switch {
	case s.Ladder != nil:
		labels := s.Ladder.Labels
		cell := max(cellWidth(f), lipgloss.Width(labels[0]), lipgloss.Width(labels[1]))
		b.WriteString(pad("", nameWidth) + "  " +
			st.Header.Render(pad(labels[0], cell+7)) + "  " +
			st.Header.Render(labels[1]) + "\n")
		for _, r := range rows {
			b.WriteString(st.Trait.Render(pad(r.trait.Name, nameWidth)) + "  ")
			if !r.ok {
				b.WriteString(st.Missing.Render(NotAvailable) + "\n")
				continue
			}
			b.WriteString(f.cell(st, r.value.Current, r.level.Current, cell) + "  ")
			b.WriteString(strings.TrimRight(f.cell(st, r.value.Future, r.level.Future, cell), " ") + "\n")
		}
		b.WriteString("\n")
		b.WriteString(st.Summary.Render("Average: " + f.value(s.Ladder.Average)))
		b.WriteString("\n")
		if o := s.Ladder.Overall; o != nil {
			b.WriteString(st.Summary.Render(fmt.Sprintf("Overall: %s %s, %s %s",
				labels[0], f.value(o.Current), labels[1], f.value(o.Future))))
			b.WriteString("\n")
		}

	case s.Standard != nil:
		for _, r := range rows {
			b.WriteString(st.Trait.Render(pad(r.trait.Name, nameWidth)) + "  ")
			if !r.ok {
				b.WriteString(st.Missing.Render(NotAvailable) + "\n")
				continue
			}
			if width > 0 {
				b.WriteString(st.bar(scoring.ScoreToPercentage(r.value.Current, scale.Min, scale.Max)/100, width) + "  ")
			}
			b.WriteString(strings.TrimRight(f.cell(st, r.value.Current, r.level.Current, cellWidth(f)), " ") + "\n")
		}
		b.WriteString("\n")
		b.WriteString(st.Summary.Render("Average: " + f.value(s.Standard.Average)))
		b.WriteString("\n")
		if o := s.Standard.Overall; o != nil {
			b.WriteString(st.Summary.Render("Overall: " + f.value(*o)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// buildRows pairs every quiz trait with its score and level, sorted by
// score descending. Unscored traits go last in quiz order.
func buildRows(q *quiz.Quiz, s *scoring.Summary, scale quiz.Scale) []row {
	rows := make([]row, 0, len(q.Traits))
	switch {
	case s.Ladder != nil:
		levels := scoring.ClassifyLadder(s.Ladder, q.Traits, scale)
		for _, t := range q.Traits {
			p, ok := s.Ladder.TraitScores[t.ID]
			rows = append(rows, row{trait: t, ok: ok, key: p.Current + p.Future, value: p, level: levels[t.ID]})
		}
	case s.Standard != nil:
		levels := scoring.ClassifyStandard(s.Standard, q.Traits, scale)
		for _, t := range q.Traits {
			v, ok := s.Standard.TraitScores[t.ID]
			rows = append(rows, row{
				trait: t, ok: ok, key: v,
				value: quiz.Pair{Current: v},
				level: scoring.LevelPair{Current: levels[t.ID]},
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ok != rows[j].ok {
			return rows[i].ok
		}
		return rows[i].key > rows[j].key
	})
	return rows
}

type formatter struct {
	scale   quiz.Scale
	percent bool
}

// value formats a raw score on the quiz scale.
func (f formatter) value(v float64) string {
	if f.percent {
		return FormatPercent(scoring.ScoreToPercentage(v, f.scale.Min, f.scale.Max))
	}
	return FormatFraction(v, f.scale)
}

// cell renders a score padded to width followed by its level.
func (f formatter) cell(st Styles, v float64, level scoring.Level, width int) string {
	return st.Score.Render(pad(f.value(v), width)) + " " + st.level(string(level)).Render(pad(string(level), 6))
}

// cellWidth is the widest score string the formatter can produce.
func cellWidth(f formatter) int {
	if f.percent {
		return len("100%")
	}
	return len(FormatNumber(f.scale.Max)+"/"+FormatNumber(f.scale.Max)) + 3
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
