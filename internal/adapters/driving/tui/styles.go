package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the pre-configured lipgloss styles for the ask view.
type Styles struct {
	// Title style for the app header.
	Title lipgloss.Style

	// Section style for answer section headers.
	Section lipgloss.Style

	// Caption style for muted secondary text.
	Caption lipgloss.Style

	// InputField style wraps the question input.
	InputField lipgloss.Style

	// Error style for failures and refusals.
	Error lipgloss.Style

	// Help style for the key hint line.
	Help lipgloss.Style
}

// DefaultStyles returns the default styling.
func DefaultStyles() *Styles {
	var (
		primary = lipgloss.Color("#7C3AED") // Purple
		muted   = lipgloss.Color("#6C7086") // Medium gray
		errCol  = lipgloss.Color("#F38BA8") // Red
		border  = lipgloss.Color("#45475A") // Border gray
	)

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Section: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Caption: lipgloss.NewStyle().
			Foreground(muted),
		InputField: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(errCol),
		Help: lipgloss.NewStyle().
			Foreground(muted),
	}
}
