package bubbletea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdnotion"
	"github.com/fwojciec/mdnotion/ansi"
	"github.com/mattn/go-runewidth"
)

// kindWidth is the column width reserved for the kind label of a row.
const kindWidth = 14

// ToggleMsg tells a TokenBlock to toggle its collapsed state.
// Sent by the root model when the user presses enter on the selected row.
type ToggleMsg struct{}

// TokenBlock is one row of the token list. Collapsed, it shows the token kind
// and a one-line summary; expanded, it also shows the token rendered as it
// would appear in the preview.
type TokenBlock struct {
	token     mdnotion.Token
	collapsed bool
	theme     mdnotion.Theme
	styles    Styles
}

// NewTokenBlock creates a TokenBlock that starts collapsed.
func NewTokenBlock(tok mdnotion.Token, theme mdnotion.Theme, styles Styles) *TokenBlock {
	return &TokenBlock{token: tok, collapsed: true, theme: theme, styles: styles}
}

// Token returns the token shown by the block.
func (b *TokenBlock) Token() mdnotion.Token { return b.token }

// Collapsed reports whether the block hides its rendered preview.
func (b *TokenBlock) Collapsed() bool { return b.collapsed }

func (b *TokenBlock) Update(msg tea.Msg) (*TokenBlock, tea.Cmd) {
	if _, ok := msg.(ToggleMsg); ok {
		b.collapsed = !b.collapsed
	}
	return b, nil
}

// View renders the block at width. The selected row is highlighted.
func (b *TokenBlock) View(width int, selected bool) string {
	indicator := "▶"
	if !b.collapsed {
		indicator = "▼"
	}
	label := fmt.Sprintf("%s %-*s", indicator, kindWidth-2, b.token.Kind())
	summary := runewidth.Truncate(Summary(b.token), max(width-kindWidth-1, 1), "…")

	row := b.styles.Kind.Render(label) + " " + b.styles.summaryStyle(b.token.Kind()).Render(summary)
	if selected {
		row = b.styles.Selected.Render(label + " " + summary)
	}
	if b.collapsed {
		return row
	}

	detail := ansi.RenderToken(b.token, max(width-2, 1), b.theme)
	lines := strings.Split(detail, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return row + "\n" + strings.Join(lines, "\n")
}

// Summary returns a single-line description of a token's content.
func Summary(tok mdnotion.Token) string {
	var s string
	switch t := tok.(type) {
	case mdnotion.Heading:
		s = fmt.Sprintf("h%d %s", t.Level, mdnotion.PlainText(t.Text))
	case mdnotion.CodeBlock:
		first, _, _ := strings.Cut(t.Text, "\n")
		if t.Lang != "" {
			s = fmt.Sprintf("[%s] %s", t.Lang, first)
		} else {
			s = first
		}
	case mdnotion.BulletList:
		s = strings.Repeat(" ", t.Nesting) + mdnotion.PlainText(t.Text)
	case mdnotion.NumberedList:
		s = fmt.Sprintf("%s%d. %s", strings.Repeat(" ", t.Nesting), t.Ordinal, mdnotion.PlainText(t.Text))
	case mdnotion.Image:
		s = t.URL
	case mdnotion.EmbeddedFile:
		s = t.URL
	default:
		s = mdnotion.PlainText(mdnotion.RichText(tok))
	}
	return strings.ReplaceAll(s, "\t", "    ")
}
