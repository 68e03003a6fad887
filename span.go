package mdnotion

import "strings"

// Span is a sealed interface representing one inline rich-text unit.
// Text fields hold the content with delimiters stripped.
type Span interface {
	isSpan()
	Kind() SpanKind
}

// CodeSpan is inline code.
type CodeSpan struct {
	Text string
}

func (CodeSpan) isSpan() {}

// Kind returns SpanCode.
func (CodeSpan) Kind() SpanKind { return SpanCode }

// BoldSpan is strongly emphasized text.
type BoldSpan struct {
	Text string
}

func (BoldSpan) isSpan() {}

// Kind returns SpanBold.
func (BoldSpan) Kind() SpanKind { return SpanBold }

// ItalicSpan is emphasized text.
type ItalicSpan struct {
	Text string
}

func (ItalicSpan) isSpan() {}

// Kind returns SpanItalic.
func (ItalicSpan) Kind() SpanKind { return SpanItalic }

// StrikethroughSpan is struck-through text.
type StrikethroughSpan struct {
	Text string
}

func (StrikethroughSpan) isSpan() {}

// Kind returns SpanStrikethrough.
func (StrikethroughSpan) Kind() SpanKind { return SpanStrikethrough }

// LinkSpan is a hyperlink with visible text.
type LinkSpan struct {
	Text string
	URL  string
}

func (LinkSpan) isSpan() {}

// Kind returns SpanLink.
func (LinkSpan) Kind() SpanKind { return SpanLink }

// TextSpan is unformatted text.
type TextSpan struct {
	Text string
}

func (TextSpan) isSpan() {}

// Kind returns SpanText.
func (TextSpan) Kind() SpanKind { return SpanText }

// Interface compliance checks.
var (
	_ Span = CodeSpan{}
	_ Span = BoldSpan{}
	_ Span = ItalicSpan{}
	_ Span = StrikethroughSpan{}
	_ Span = LinkSpan{}
	_ Span = TextSpan{}
)

// PlainText concatenates the visible text of spans, dropping formatting and
// link destinations.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(SpanContent(s))
	}
	return b.String()
}

// SpanContent returns the delimiter-stripped text of a single span.
func SpanContent(s Span) string {
	switch v := s.(type) {
	case CodeSpan:
		return v.Text
	case BoldSpan:
		return v.Text
	case ItalicSpan:
		return v.Text
	case StrikethroughSpan:
		return v.Text
	case LinkSpan:
		return v.Text
	case TextSpan:
		return v.Text
	default:
		return ""
	}
}
