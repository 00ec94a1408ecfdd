package report

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Styles is the set of styles a report is rendered with.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Trait    lipgloss.Style
	Score    lipgloss.Style
	Missing  lipgloss.Style
	Summary  lipgloss.Style

	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style

	Levels map[string]lipgloss.Style
}

// DefaultStyles returns the colored terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(TextDim),
		Header: lipgloss.NewStyle().
			Foreground(TextDim).
			Bold(true),
		Trait: lipgloss.NewStyle().
			Foreground(Text),
		Score: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),
		Missing: lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true),
		Summary: lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true),
		BarFilled: lipgloss.NewStyle().
			Foreground(Secondary),
		BarEmpty: lipgloss.NewStyle().
			Foreground(Border),
		Levels: map[string]lipgloss.Style{
			"low":    lipgloss.NewStyle().Foreground(Error),
			"medium": lipgloss.NewStyle().Foreground(Accent),
			"high":   lipgloss.NewStyle().Foreground(Success),
		},
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:     plain,
		Subtitle:  plain,
		Header:    plain,
		Trait:     plain,
		Score:     plain,
		Missing:   plain,
		Summary:   plain,
		BarFilled: plain,
		BarEmpty:  plain,
		Levels:    map[string]lipgloss.Style{},
	}
}

func (s Styles) level(name string) lipgloss.Style {
	if st, ok := s.Levels[name]; ok {
		return st
	}
	return lipgloss.NewStyle()
}
