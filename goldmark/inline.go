package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/mdnotion"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// run is one line of inline content. An image ends the current run and
// occupies a run of its own.
type run struct {
	spans []mdnotion.Span
	image string
}

type inlineCollector struct {
	src  []byte
	runs []run
	cur  []mdnotion.Span
}

// runs splits the inline children of node into lines of spans and images.
// Empty lines are dropped.
func (w *walker) runs(node ast.Node) []run {
	c := inlineCollector{src: w.src}
	for n := node.FirstChild(); n != nil; n = n.NextSibling() {
		c.inline(n)
	}
	c.flush()
	return c.runs
}

func (c *inlineCollector) flush() {
	if len(c.cur) > 0 {
		c.runs = append(c.runs, run{spans: c.cur})
	}
	c.cur = nil
}

func (c *inlineCollector) text(s string) {
	if s == "" {
		return
	}
	if last := len(c.cur) - 1; last >= 0 {
		if t, ok := c.cur[last].(mdnotion.TextSpan); ok {
			c.cur[last] = mdnotion.TextSpan{Text: t.Text + s}
			return
		}
	}
	c.cur = append(c.cur, mdnotion.TextSpan{Text: s})
}

func (c *inlineCollector) span(s mdnotion.Span) {
	c.cur = append(c.cur, s)
}

func (c *inlineCollector) inline(node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		c.text(strings.TrimRight(string(n.Segment.Value(c.src)), "\r\n"))
		if n.SoftLineBreak() || n.HardLineBreak() {
			c.flush()
		}

	case *ast.String:
		c.text(string(n.Value))

	case *ast.Emphasis:
		inner := c.plain(n)
		if inner == "" {
			return
		}
		if n.Level == 1 {
			c.span(mdnotion.ItalicSpan{Text: inner})
		} else {
			c.span(mdnotion.BoldSpan{Text: inner})
		}

	case *extast.Strikethrough:
		if inner := c.plain(n); inner != "" {
			c.span(mdnotion.StrikethroughSpan{Text: inner})
		}

	case *ast.CodeSpan:
		if inner := c.plain(n); inner != "" {
			c.span(mdnotion.CodeSpan{Text: inner})
		}

	case *ast.Link:
		c.span(mdnotion.LinkSpan{Text: c.plain(n), URL: string(n.Destination)})

	case *ast.AutoLink:
		c.span(mdnotion.LinkSpan{Text: string(n.Label(c.src)), URL: string(n.URL(c.src))})

	case *ast.Image:
		c.flush()
		c.runs = append(c.runs, run{image: string(n.Destination)})

	case *ast.RawHTML:
		segs := n.Segments
		for i := 0; i < segs.Len(); i++ {
			c.text(string(segs.At(i).Value(c.src)))
		}

	default:
		for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
			c.inline(ch)
		}
	}
}

// plain collects the text of an inline subtree, dropping nested styling.
func (c *inlineCollector) plain(node ast.Node) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch v := n.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(c.src))
			if v.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(v.Value)
		case *ast.AutoLink:
			buf.Write(v.Label(c.src))
		default:
			for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
				walk(ch)
			}
		}
	}
	walk(node)
	return strings.TrimRight(buf.String(), "\r\n")
}
