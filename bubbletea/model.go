package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdnotion"
	"github.com/fwojciec/mdnotion/ansi"
	"github.com/rivo/uniseg"
)

var _ tea.Model = Model{}

// Mode selects what the viewport shows.
type Mode int

const (
	// ModeList shows one row per token.
	ModeList Mode = iota
	// ModePreview shows the whole document rendered for the terminal.
	ModePreview
)

// Model is the Bubble Tea model for the token browser.
type Model struct {
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	result mdnotion.Result
	theme  mdnotion.Theme
	styles Styles

	blocks   []*TokenBlock
	selected int
	mode     Mode
	ready    bool
}

// New creates a token browser for result.
func New(result mdnotion.Result, theme mdnotion.Theme) Model {
	styles := NewStyles(theme)
	blocks := make([]*TokenBlock, len(result.Tokens))
	for i, tok := range result.Tokens {
		blocks[i] = NewTokenBlock(tok, theme, styles)
	}
	return Model{
		result: result,
		theme:  theme,
		styles: styles,
		blocks: blocks,
	}
}

// Selected returns the index of the selected token.
func (m Model) Selected() int { return m.selected }

// Mode returns the current view mode.
func (m Model) Mode() Mode { return m.mode }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Viewport receives the rest for mouse scrolling.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	borderHeight := 1 // newline between sections
	vpHeight := max(msg.Height-statusHeight-borderHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent())
	m.scrollToSelected()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		if m.mode == ModeList {
			m.mode = ModePreview
		} else {
			m.mode = ModeList
		}
		m.Viewport.SetContent(m.renderContent())
		if m.mode == ModePreview {
			m.Viewport.GotoTop()
		} else {
			m.scrollToSelected()
		}
		return m, nil

	case "enter":
		if m.mode == ModeList && len(m.blocks) > 0 {
			_, cmd := m.blocks[m.selected].Update(ToggleMsg{})
			m.Viewport.SetContent(m.renderContent())
			m.scrollToSelected()
			return m, cmd
		}
		return m, nil

	case "up", "k":
		if m.mode == ModeList {
			return m.moveSelection(-1), nil
		}
	case "down", "j":
		if m.mode == ModeList {
			return m.moveSelection(1), nil
		}
	case "home", "g":
		if m.mode == ModeList {
			return m.moveSelection(-m.selected), nil
		}
	case "end", "G":
		if m.mode == ModeList {
			return m.moveSelection(len(m.blocks) - 1 - m.selected), nil
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) moveSelection(delta int) Model {
	if len(m.blocks) == 0 {
		return m
	}
	m.selected = min(max(m.selected+delta, 0), len(m.blocks)-1)
	m.Viewport.SetContent(m.renderContent())
	m.scrollToSelected()
	return m
}

// scrollToSelected adjusts the viewport offset so the selected row is visible.
func (m *Model) scrollToSelected() {
	if m.mode != ModeList || !m.ready {
		return
	}
	line := m.selectedLine()
	switch {
	case line < m.Viewport.YOffset:
		m.Viewport.SetYOffset(line)
	case line >= m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.SetYOffset(line - m.Viewport.Height + 1)
	}
}

// selectedLine returns the content line on which the selected row starts.
func (m Model) selectedLine() int {
	line := 0
	for i := 0; i < m.selected && i < len(m.blocks); i++ {
		line += strings.Count(m.blocks[i].View(m.Viewport.Width, false), "\n") + 1
	}
	return line
}

func (m Model) renderContent() string {
	if m.mode == ModePreview {
		return ansi.Render(m.result.Tokens, m.Viewport.Width, m.theme)
	}
	if len(m.blocks) == 0 {
		return m.styles.Muted.Render("No tokens.")
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.View(m.Viewport.Width, i == m.selected))
	}
	return b.String()
}

func (m Model) statusLine() string {
	source := m.result.Source
	if source == "" {
		source = "stdin"
	}
	left := source
	if len(m.blocks) > 0 {
		left = fmt.Sprintf("%s  %d/%d %s", source, m.selected+1, len(m.blocks), m.blocks[m.selected].Token().Kind())
	}
	right := "tab preview  enter expand  q quit"
	if m.mode == ModePreview {
		right = "tab list  q quit"
	}

	gap := m.Viewport.Width - uniseg.StringWidth(left) - uniseg.StringWidth(right)
	if gap < 2 {
		return m.styles.Muted.Render(left)
	}
	return m.styles.Accent.Render(left) + strings.Repeat(" ", gap) + m.styles.Muted.Render(right)
}
