package mdnotion

// Token is a sealed interface representing one block-level unit of a
// tokenized document. The unexported marker method prevents external
// implementations. Kind() returns the variant without requiring a type switch.
type Token interface {
	isToken()
	Kind() Kind
}

// Heading is a level 1-3 heading.
type Heading struct {
	Level int
	Text  []Span
}

func (Heading) isToken() {}

// Kind returns KindHeading.
func (Heading) Kind() Kind { return KindHeading }

// CodeBlock is a fenced code block. Lang is empty when the opening fence
// carries no language tag.
type CodeBlock struct {
	Text string
	Lang string
}

func (CodeBlock) isToken() {}

// Kind returns KindCodeBlock.
func (CodeBlock) Kind() Kind { return KindCodeBlock }

// BulletList is a single bullet list item. Nesting is the number of spaces
// that preceded the marker.
type BulletList struct {
	Text    []Span
	Nesting int
}

func (BulletList) isToken() {}

// Kind returns KindBulletList.
func (BulletList) Kind() Kind { return KindBulletList }

// NumberedList is a single numbered list item. Ordinal is the literal number
// written in the source, not a recomputed index.
type NumberedList struct {
	Text    []Span
	Ordinal int
	Nesting int
}

func (NumberedList) isToken() {}

// Kind returns KindNumberedList.
func (NumberedList) Kind() Kind { return KindNumberedList }

// Image is an image reference. The alt text is not retained.
type Image struct {
	URL string
}

func (Image) isToken() {}

// Kind returns KindImage.
func (Image) Kind() Kind { return KindImage }

// Quote is a single quoted line.
type Quote struct {
	Text []Span
}

func (Quote) isToken() {}

// Kind returns KindQuote.
func (Quote) Kind() Kind { return KindQuote }

// EmbeddedFile is a link to allow-listed embeddable media.
type EmbeddedFile struct {
	URL string
}

func (EmbeddedFile) isToken() {}

// Kind returns KindEmbeddedFile.
func (EmbeddedFile) Kind() Kind { return KindEmbeddedFile }

// Paragraph is a line of text that matched no other construct.
type Paragraph struct {
	Text []Span
}

func (Paragraph) isToken() {}

// Kind returns KindParagraph.
func (Paragraph) Kind() Kind { return KindParagraph }

// Interface compliance checks.
var (
	_ Token = Heading{}
	_ Token = CodeBlock{}
	_ Token = BulletList{}
	_ Token = NumberedList{}
	_ Token = Image{}
	_ Token = Quote{}
	_ Token = EmbeddedFile{}
	_ Token = Paragraph{}
)

// RichText returns the rich-text content of tokens that carry free text and
// nil for the others.
func RichText(tok Token) []Span {
	switch t := tok.(type) {
	case Heading:
		return t.Text
	case BulletList:
		return t.Text
	case NumberedList:
		return t.Text
	case Quote:
		return t.Text
	case Paragraph:
		return t.Text
	default:
		return nil
	}
}
