// Package ansi renders a token stream as ANSI-styled terminal text using
// lipgloss for styling and reflow for wrapping.
package ansi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdnotion"
	reflow "github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// minWidth is the narrowest column text is wrapped to.
const minWidth = 10

type renderer struct {
	width     int
	heading   lipgloss.Style
	bold      lipgloss.Style
	italic    lipgloss.Style
	strike    lipgloss.Style
	code      lipgloss.Style
	quote     lipgloss.Style
	link      lipgloss.Style
	media     lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
}

func newRenderer(width int, theme mdnotion.Theme) *renderer {
	return &renderer{
		width:     width,
		heading:   lipgloss.NewStyle().Foreground(Color(theme.Heading)).Bold(true),
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		strike:    lipgloss.NewStyle().Strikethrough(true),
		code:      lipgloss.NewStyle().Foreground(Color(theme.Code)),
		quote:     lipgloss.NewStyle().Foreground(Color(theme.Quote)),
		link:      lipgloss.NewStyle().Foreground(Color(theme.Link)).Underline(true),
		media:     lipgloss.NewStyle().Foreground(Color(theme.Media)),
		muted:     lipgloss.NewStyle().Foreground(Color(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
	}
}

// Color maps an ANSI color index to a lipgloss color. Negative indices map to
// no color.
func Color(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// Render returns the tokens as styled terminal text wrapped to width.
// Consecutive list items and consecutive quote lines are kept together;
// other tokens are separated by a blank line. Code blocks are not reflowed.
func Render(tokens []mdnotion.Token, width int, theme mdnotion.Theme) string {
	if len(tokens) == 0 {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(width, theme)

	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteString("\n")
			if !grouped(tokens[i-1], tok) {
				b.WriteString("\n")
			}
		}
		b.WriteString(r.token(tok))
	}
	return b.String()
}

// RenderToken renders a single token without a trailing newline.
func RenderToken(tok mdnotion.Token, width int, theme mdnotion.Theme) string {
	if width <= 0 {
		width = 80
	}
	return newRenderer(width, theme).token(tok)
}

func grouped(prev, next mdnotion.Token) bool {
	isList := func(k mdnotion.Kind) bool {
		return k == mdnotion.KindBulletList || k == mdnotion.KindNumberedList
	}
	pk, nk := prev.Kind(), next.Kind()
	return (isList(pk) && isList(nk)) || (pk == mdnotion.KindQuote && nk == mdnotion.KindQuote)
}

func (r *renderer) token(tok mdnotion.Token) string {
	switch t := tok.(type) {
	case mdnotion.Heading:
		marker := strings.Repeat("#", t.Level) + " "
		return styleLines(r.heading, r.wrap(marker+mdnotion.PlainText(t.Text), 0))

	case mdnotion.Paragraph:
		return r.wrap(r.spans(t.Text), 0)

	case mdnotion.BulletList:
		return r.item(t.Nesting, "• ", r.spans(t.Text))

	case mdnotion.NumberedList:
		return r.item(t.Nesting, fmt.Sprintf("%d. ", t.Ordinal), r.spans(t.Text))

	case mdnotion.Quote:
		bar := r.quote.Render("│") + " "
		wrapped := wordwrap.String(r.spans(t.Text), r.column(2))
		lines := strings.Split(wrapped, "\n")
		for i, line := range lines {
			lines[i] = bar + line
		}
		return strings.Join(lines, "\n")

	case mdnotion.CodeBlock:
		var lines []string
		if t.Lang != "" {
			lines = append(lines, r.muted.Render(t.Lang))
		}
		gutter := r.muted.Render("│") + " "
		for _, line := range strings.Split(t.Text, "\n") {
			lines = append(lines, gutter+r.code.Render(line))
		}
		return strings.Join(lines, "\n")

	case mdnotion.Image:
		return r.media.Render("▣ image ") + r.underline.Render(r.fitURL(t.URL, 8))

	case mdnotion.EmbeddedFile:
		return r.media.Render("▶ embed ") + r.underline.Render(r.fitURL(t.URL, 8))

	default:
		return ""
	}
}

// item renders a list entry with its marker after nesting spaces and hangs
// continuation lines under the first character of the text.
func (r *renderer) item(nesting int, marker, text string) string {
	prefix := nesting + reflow.PrintableRuneWidth(marker)
	wrapped := wordwrap.String(text, r.column(prefix))
	hung := indent.String(wrapped, uint(prefix))
	// indent pads every line; swap the first line's padding for the marker.
	first := strings.Repeat(" ", nesting) + r.muted.Render(marker)
	return first + strings.TrimPrefix(hung, strings.Repeat(" ", prefix))
}

// styleLines applies style to each line separately so no line is padded to
// the width of the longest.
func styleLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) wrap(text string, used int) string {
	return wordwrap.String(text, r.column(used))
}

func (r *renderer) column(used int) int {
	return max(r.width-used, minWidth)
}

// fitURL shortens url to the columns left after a label of the given width,
// first dropping the scheme and then truncating with an ellipsis.
func (r *renderer) fitURL(url string, label int) string {
	limit := r.column(label)
	if reflow.PrintableRuneWidth(url) <= limit {
		return url
	}
	if _, rest, ok := strings.Cut(url, "://"); ok && reflow.PrintableRuneWidth(rest) <= limit {
		return rest
	}
	return truncate.StringWithTail(url, uint(limit), "…")
}

func (r *renderer) spans(spans []mdnotion.Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch v := s.(type) {
		case mdnotion.CodeSpan:
			b.WriteString(r.code.Render(v.Text))
		case mdnotion.BoldSpan:
			b.WriteString(r.bold.Render(v.Text))
		case mdnotion.ItalicSpan:
			b.WriteString(r.italic.Render(v.Text))
		case mdnotion.StrikethroughSpan:
			b.WriteString(r.strike.Render(v.Text))
		case mdnotion.LinkSpan:
			b.WriteString(r.link.Render(v.Text))
			b.WriteString(" ")
			b.WriteString(r.muted.Render("(" + v.URL + ")"))
		case mdnotion.TextSpan:
			b.WriteString(v.Text)
		}
	}
	return b.String()
}
