package report

import "strings"

// bar renders a horizontal bar of width cells filled to fraction.
func (s Styles) bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(float64(width)*fraction + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.BarFilled.Render(strings.Repeat("█", filled)) +
		s.BarEmpty.Render(strings.Repeat("░", width-filled))
}
