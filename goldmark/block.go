package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/mdnotion"
	"github.com/yuin/goldmark/ast"
)

type walker struct {
	cfg    *mdnotion.Config
	src    []byte
	tokens []mdnotion.Token
}

func (w *walker) emit(tok mdnotion.Token) {
	w.tokens = append(w.tokens, tok)
}

func (w *walker) walkBlock(node ast.Node) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		w.renderBlock(c)
	}
}

func (w *walker) renderBlock(node ast.Node) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		for _, r := range w.runs(n) {
			if r.image != "" {
				w.emit(mdnotion.Image{URL: r.image})
				continue
			}
			w.paragraph(r.spans)
		}

	case *ast.Heading:
		for _, r := range w.runs(n) {
			switch {
			case r.image != "":
				w.emit(mdnotion.Image{URL: r.image})
			case n.Level > 3:
				w.emit(mdnotion.Paragraph{Text: r.spans})
			default:
				w.emit(mdnotion.Heading{Level: n.Level, Text: r.spans})
			}
		}

	case *ast.FencedCodeBlock:
		w.emit(mdnotion.CodeBlock{
			Text: w.lines(n),
			Lang: strings.TrimSpace(string(n.Language(w.src))),
		})

	case *ast.CodeBlock:
		w.emit(mdnotion.CodeBlock{Text: w.lines(n)})

	case *ast.List:
		w.renderList(n)

	case *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			p, ok := c.(*ast.Paragraph)
			if !ok {
				w.renderBlock(c)
				continue
			}
			for _, r := range w.runs(p) {
				if r.image != "" {
					w.emit(mdnotion.Image{URL: r.image})
					continue
				}
				w.emit(mdnotion.Quote{Text: r.spans})
			}
		}

	case *ast.ThematicBreak:
		w.emit(mdnotion.Paragraph{Text: []mdnotion.Span{mdnotion.TextSpan{Text: "---"}}})

	case *ast.HTMLBlock:
		// No HTML passthrough: raw lines become plain paragraphs.
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := strings.TrimRight(string(lines.At(i).Value(w.src)), "\r\n")
			if line == "" {
				continue
			}
			w.emit(mdnotion.Paragraph{Text: []mdnotion.Span{mdnotion.TextSpan{Text: line}}})
		}

	default:
		w.walkBlock(node)
	}
}

// paragraph emits a top-level line of text, recognizing allow-listed media
// URLs that open the line.
func (w *walker) paragraph(spans []mdnotion.Span) {
	text := mdnotion.PlainText(spans)
	if w.cfg.HasEmbedPrefix(text) {
		for _, re := range w.cfg.EmbedPatterns {
			loc := re.FindStringIndex(text)
			if loc == nil || loc[0] != 0 || loc[1] == 0 {
				continue
			}
			w.emit(mdnotion.EmbeddedFile{URL: text[:loc[1]]})
			if rest := strings.TrimLeft(text[loc[1]:], " "); rest != "" {
				w.emit(mdnotion.Paragraph{Text: []mdnotion.Span{mdnotion.TextSpan{Text: rest}}})
			}
			return
		}
	}
	w.emit(mdnotion.Paragraph{Text: spans})
}

func (w *walker) renderList(list *ast.List) {
	i := 0
	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		ordinal := list.Start + i
		i++

		first := true
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if !first {
					w.renderBlock(in)
					continue
				}
				first = false
				nesting := w.indent(in)
				for j, r := range w.runs(in) {
					switch {
					case r.image != "":
						w.emit(mdnotion.Image{URL: r.image})
					case j > 0:
						w.emit(mdnotion.Paragraph{Text: r.spans})
					case list.IsOrdered():
						w.emit(mdnotion.NumberedList{Text: r.spans, Ordinal: ordinal, Nesting: nesting})
					default:
						w.emit(mdnotion.BulletList{Text: r.spans, Nesting: nesting})
					}
				}
			default:
				first = false
				w.renderBlock(ic)
			}
		}
	}
}

// indent counts the spaces between the start of the source line holding the
// node's first text line and the first non-space byte.
func (w *walker) indent(node ast.Node) int {
	lines := node.Lines()
	if lines.Len() == 0 {
		return 0
	}
	start := lines.At(0).Start
	lineStart := bytes.LastIndexByte(w.src[:start], '\n') + 1
	n := 0
	for _, b := range w.src[lineStart:start] {
		if b != ' ' {
			break
		}
		n++
	}
	return n
}

// lines joins the raw lines of a code block without the final line ending.
func (w *walker) lines(node ast.Node) string {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		buf.Write(lines.At(i).Value(w.src))
	}
	return strings.TrimSuffix(strings.ReplaceAll(buf.String(), "\r\n", "\n"), "\n")
}
