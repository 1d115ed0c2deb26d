package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used around a rendered report
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}

// NewStyles builds styles bound to w. With color false every style renders
// plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:   r.NewStyle().Foreground(lipgloss.Color("244")), // Gray
		Value:   r.NewStyle().Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
		Danger:  r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
	}
}
