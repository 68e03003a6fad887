package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdnotion"
	bt "github.com/fwojciec/mdnotion/bubbletea"
	"github.com/stretchr/testify/require"
)

func plain(s string) []mdnotion.Span {
	return []mdnotion.Span{mdnotion.TextSpan{Text: s}}
}

func sampleResult() mdnotion.Result {
	return mdnotion.Result{
		Source: "notes.md",
		Tokens: []mdnotion.Token{
			mdnotion.Heading{Level: 1, Text: plain("Title")},
			mdnotion.Paragraph{Text: plain("first paragraph")},
			mdnotion.CodeBlock{Text: "x := 1\ny := 2", Lang: "go"},
			mdnotion.Image{URL: "https://example.com/a.png"},
		},
	}
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, result mdnotion.Result) bt.Model {
	t.Helper()
	return initModelWithSize(t, result, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, result mdnotion.Result, width, height int) bt.Model {
	t.Helper()
	m := bt.New(result, mdnotion.DefaultTheme())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
