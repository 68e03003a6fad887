package mdnotion

// Kind identifies the variant of a block token.
type Kind string

const (
	KindHeading      Kind = "heading"
	KindCodeBlock    Kind = "code_block"
	KindBulletList   Kind = "bullet_list"
	KindNumberedList Kind = "numbered_list"
	KindImage        Kind = "image"
	KindQuote        Kind = "quote"
	KindEmbeddedFile Kind = "embedded_file"
	KindParagraph    Kind = "paragraph"
)

// SpanKind identifies the variant of a rich-text span.
type SpanKind string

const (
	SpanCode          SpanKind = "code"
	SpanBold          SpanKind = "bold"
	SpanItalic        SpanKind = "italic"
	SpanStrikethrough SpanKind = "strikethrough"
	SpanLink          SpanKind = "link"
	SpanText          SpanKind = "text"
)
