package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdnotion"
	"github.com/fwojciec/mdnotion/ansi"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Kind     lipgloss.Style
	Heading  lipgloss.Style
	Code     lipgloss.Style
	Media    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t mdnotion.Theme) Styles {
	return Styles{
		Kind:     lipgloss.NewStyle().Foreground(ansi.Color(t.Muted)),
		Heading:  lipgloss.NewStyle().Foreground(ansi.Color(t.Heading)).Bold(true),
		Code:     lipgloss.NewStyle().Foreground(ansi.Color(t.Code)),
		Media:    lipgloss.NewStyle().Foreground(ansi.Color(t.Media)),
		Muted:    lipgloss.NewStyle().Foreground(ansi.Color(t.Muted)).Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(ansi.Color(t.Accent)).Bold(true),
		Selected: lipgloss.NewStyle().Reverse(true),
	}
}

// summaryStyle picks the style for a token's one-line summary.
func (s Styles) summaryStyle(k mdnotion.Kind) lipgloss.Style {
	switch k {
	case mdnotion.KindHeading:
		return s.Heading
	case mdnotion.KindCodeBlock:
		return s.Code
	case mdnotion.KindImage, mdnotion.KindEmbeddedFile:
		return s.Media
	default:
		return lipgloss.NewStyle()
	}
}
