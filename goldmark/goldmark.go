// Package goldmark implements mdnotion.Tokenizer on top of goldmark's
// CommonMark parser, mapping its AST onto the mdnotion token model.
//
// Paragraph-like blocks are split at line breaks so that, like the lexer,
// each source line of text becomes its own token.
package goldmark

import (
	"github.com/fwojciec/mdnotion"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var _ mdnotion.Tokenizer = (*Tokenizer)(nil)

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithConfig sets the embedded-media allow-list. The default is
// mdnotion.DefaultConfig().
func WithConfig(cfg mdnotion.Config) Option {
	return func(t *Tokenizer) {
		t.cfg = mdnotion.NewConfig(cfg.EmbedPrefixes, cfg.EmbedPatterns)
	}
}

// Tokenizer is a goldmark-backed markdown tokenizer. It is safe for
// concurrent use.
type Tokenizer struct {
	cfg mdnotion.Config
}

// New creates a Tokenizer.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{cfg: mdnotion.DefaultConfig()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize parses source and converts the resulting AST into block tokens in
// document order.
func (t *Tokenizer) Tokenize(source string) []mdnotion.Token {
	if source == "" {
		return nil
	}
	src := []byte(source)
	p := goldmark.New(goldmark.WithExtensions(extension.Strikethrough)).Parser()
	doc := p.Parse(text.NewReader(src))

	w := walker{cfg: &t.cfg, src: src}
	w.walkBlock(doc)
	return w.tokens
}
