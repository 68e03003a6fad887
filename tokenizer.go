package mdnotion

// Tokenizer converts a markdown document into block tokens.
// Implementations never fail: a construct that cannot be matched degrades to
// a paragraph, so any input yields a complete token sequence.
type Tokenizer interface {
	Tokenize(source string) []Token
}

// Document is a markdown source ready for tokenization.
type Document struct {
	Path string
	Meta map[string]any // front matter, nil when absent
	Body string
}

// Result is a tokenized Document.
type Result struct {
	Source string
	Meta   map[string]any
	Tokens []Token
}

// Tokenize runs t over the document body.
func (d Document) Tokenize(t Tokenizer) Result {
	return Result{
		Source: d.Path,
		Meta:   d.Meta,
		Tokens: t.Tokenize(d.Body),
	}
}
