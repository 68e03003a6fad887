// Package markdown reconstructs markdown source from mdnotion tokens by
// re-applying the delimiters the tokenizer stripped.
package markdown

import (
	"strconv"
	"strings"

	"github.com/fwojciec/mdnotion"
)

// imageAlt replaces the alt text, which tokens do not retain.
const imageAlt = "image"

// Source renders tokens back to markdown, one construct per line. Tokenizing
// the output with the lexer yields an equivalent token sequence for tokens the
// lexer produced.
func Source(tokens []mdnotion.Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeToken(&b, tok)
	}
	return b.String()
}

// RichText renders spans back to inline markdown.
func RichText(spans []mdnotion.Span) string {
	var b strings.Builder
	writeSpans(&b, spans)
	return b.String()
}

func writeToken(b *strings.Builder, tok mdnotion.Token) {
	switch t := tok.(type) {
	case mdnotion.Heading:
		b.WriteString(strings.Repeat("#", t.Level))
		b.WriteByte(' ')
		writeSpans(b, t.Text)
	case mdnotion.CodeBlock:
		b.WriteString("```")
		b.WriteString(t.Lang)
		b.WriteByte('\n')
		if t.Text != "" {
			b.WriteString(t.Text)
			b.WriteByte('\n')
		}
		b.WriteString("```")
	case mdnotion.BulletList:
		b.WriteString(strings.Repeat(" ", t.Nesting))
		b.WriteString("- ")
		writeSpans(b, t.Text)
	case mdnotion.NumberedList:
		b.WriteString(strings.Repeat(" ", t.Nesting))
		b.WriteString(strconv.Itoa(t.Ordinal))
		b.WriteString(". ")
		writeSpans(b, t.Text)
	case mdnotion.Image:
		b.WriteString("![" + imageAlt + "](")
		b.WriteString(t.URL)
		b.WriteByte(')')
	case mdnotion.Quote:
		b.WriteString("> ")
		writeSpans(b, t.Text)
	case mdnotion.EmbeddedFile:
		b.WriteString(t.URL)
	case mdnotion.Paragraph:
		writeSpans(b, t.Text)
	}
}

func writeSpans(b *strings.Builder, spans []mdnotion.Span) {
	for _, s := range spans {
		switch v := s.(type) {
		case mdnotion.CodeSpan:
			b.WriteString("`" + v.Text + "`")
		case mdnotion.BoldSpan:
			b.WriteString("**" + v.Text + "**")
		case mdnotion.ItalicSpan:
			b.WriteString("*" + v.Text + "*")
		case mdnotion.StrikethroughSpan:
			b.WriteString("~~" + v.Text + "~~")
		case mdnotion.LinkSpan:
			b.WriteString("[" + v.Text + "](" + v.URL + ")")
		case mdnotion.TextSpan:
			b.WriteString(v.Text)
		}
	}
}
