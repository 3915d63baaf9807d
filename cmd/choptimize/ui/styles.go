// Package ui renders analysis reports to the terminal. It owns the color
// theme, the inline markup engine, and the output handles for one run.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. ANSI-16 codes so the report respects the user's terminal
// scheme; the score ladder mirrors the assessment label ladder.
var (
	ColorHeading = lipgloss.Color("12") // bright blue
	ColorLabel   = lipgloss.Color("6")  // cyan
	ColorValue   = lipgloss.Color("7")  // white
	ColorError   = lipgloss.Color("9")  // bright red
	ColorStatus  = lipgloss.Color("10") // bright green

	BorderDefault = lipgloss.Color("8")  // bright black
	BorderAccent  = lipgloss.Color("12") // bright blue
	BorderSuccess = lipgloss.Color("10") // bright green

	ScoreExcellent = lipgloss.Color("10") // 9-10
	ScoreGood      = lipgloss.Color("2")  // 7-8
	ScoreFair      = lipgloss.Color("11") // 5-6
	ScorePoor      = lipgloss.Color("3")  // 3-4
	ScoreVeryPoor  = lipgloss.Color("9")  // 1-2
)

// Styles holds the styled components for a report.
type Styles struct {
	Heading     lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
	TableHeader lipgloss.Style
}

// DefaultStyles returns the standard report styles.
func DefaultStyles() Styles {
	return Styles{
		Heading:     lipgloss.NewStyle().Foreground(ColorHeading).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(ColorLabel),
		Value:       lipgloss.NewStyle().Foreground(ColorValue),
		Muted:       lipgloss.NewStyle().Foreground(BorderDefault),
		Error:       lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(ColorStatus),
		TableHeader: lipgloss.NewStyle().Foreground(ColorHeading).Bold(true),
	}
}

// ScoreStyle returns the style for a score value, bucketed the same way as
// the qualitative labels.
func (s Styles) ScoreStyle(score float64) lipgloss.Style {
	var c lipgloss.Color
	switch {
	case score >= 9:
		c = ScoreExcellent
	case score >= 7:
		c = ScoreGood
	case score >= 5:
		c = ScoreFair
	case score >= 3:
		c = ScorePoor
	default:
		c = ScoreVeryPoor
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
