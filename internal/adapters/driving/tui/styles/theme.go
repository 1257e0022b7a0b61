// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Accent highlights titles and the question text.
	Accent lipgloss.Color

	// Reveal colours a revealed answer.
	Reveal lipgloss.Color

	// Text is the default text colour.
	Text lipgloss.Color

	// Faint is for hints and secondary text.
	Faint lipgloss.Color

	// Good indicates positive outcomes.
	Good lipgloss.Color

	// Caution indicates warnings such as skipped questions.
	Caution lipgloss.Color

	// Bad indicates errors.
	Bad lipgloss.Color

	// Frame is the border colour.
	Frame lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:  lipgloss.Color("#89B4FA"), // Blue
		Reveal:  lipgloss.Color("#A6E3A1"), // Green
		Text:    lipgloss.Color("#CDD6F4"), // Light gray
		Faint:   lipgloss.Color("#6C7086"), // Medium gray
		Good:    lipgloss.Color("#94E2D5"), // Teal
		Caution: lipgloss.Color("#F9E2AF"), // Yellow
		Bad:     lipgloss.Color("#F38BA8"), // Red
		Frame:   lipgloss.Color("#45475A"), // Border gray
		Bar:     lipgloss.Color("#181825"), // Near black
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style

	// Question renders the question line in the study view.
	Question lipgloss.Style

	// Answer renders a revealed answer.
	Answer lipgloss.Style

	// Hidden renders the placeholder shown instead of the answer.
	Hidden lipgloss.Style

	// Card frames the question and answer.
	Card lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Text),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Faint),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Error: lipgloss.NewStyle().
			Foreground(theme.Bad),

		Success: lipgloss.NewStyle().
			Foreground(theme.Good),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Caution),

		Question: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Answer: lipgloss.NewStyle().
			Foreground(theme.Reveal),

		Hidden: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Faint),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Frame).
			Padding(1, 2),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Frame).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Faint).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Faint),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
