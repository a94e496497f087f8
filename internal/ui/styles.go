package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Colors
	Primary   = lipgloss.Color("63")  // Purple/blue
	Secondary = lipgloss.Color("86")  // Cyan
	Success   = lipgloss.Color("78")  // Green
	Warning   = lipgloss.Color("214") // Orange
	Error     = lipgloss.Color("196") // Red
	Subtle    = lipgloss.Color("241") // Gray
	Surface   = lipgloss.Color("236") // Dark gray
	Text      = lipgloss.Color("252") // Light gray
	TextDim   = lipgloss.Color("245") // Dimmer text

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Background(Surface).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(Text).
				Background(Surface).
				Bold(true)

	DimStyle = lipgloss.NewStyle().Foreground(TextDim)
)

// Styles are the console report styles, bound to one output renderer.
// Every style here renders single lines only and adds no padding, so with
// an ASCII profile the output is the plain text.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Banner  lipgloss.Style
	Port    lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates report styles for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().Foreground(Primary).Bold(true),
		Label:   r.NewStyle().Bold(true),
		Banner:  r.NewStyle().Foreground(Subtle),
		Port:    r.NewStyle().Foreground(Secondary).Bold(true),
		Error:   r.NewStyle().Foreground(Error),
	}
}

// PlainStyles returns styles that never emit escape sequences.
func PlainStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyles(r)
}
