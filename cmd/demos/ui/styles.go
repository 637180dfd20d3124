// Package ui provides the styling for non-transcript demos output.
// Fixture transcripts are never styled; only auxiliary surfaces like the
// list table go through lipgloss.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#101F38") // Dark Blue
	accent  = lipgloss.Color("#8BC34A") // Lime Green
	muted   = lipgloss.Color("#d6dae0")
)

// Styles holds the style set used by the table renderer.
type Styles struct {
	Title lipgloss.Style
	Bold  lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Bold:  lipgloss.NewStyle().Bold(true).Foreground(primary),
		Body:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Foreground(muted),
	}
}
