// Package lexer tokenizes markdown line by line into mdnotion block tokens
// and splits block text into rich-text spans.
//
// The scanner is total: any construct that fails to match degrades to a
// paragraph holding the text it was matched against, so Tokenize never
// returns an error.
package lexer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/mdnotion"
)

var _ mdnotion.Tokenizer = (*Lexer)(nil)

// SyntaxError reports a block construct that did not match its pattern.
// It unwraps to mdnotion.ErrInvalidSyntax.
type SyntaxError struct {
	Kind   mdnotion.Kind // construct that was attempted
	Offset int           // byte offset of the attempt in the normalized source
	Line   string        // the line that failed to match
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid %s syntax at offset %d: %q", e.Kind, e.Offset, e.Line)
}

// Unwrap returns mdnotion.ErrInvalidSyntax.
func (e *SyntaxError) Unwrap() error { return mdnotion.ErrInvalidSyntax }

// Option configures a Lexer.
type Option func(*Lexer)

// WithConfig sets the embedded-media allow-list. The default is
// mdnotion.DefaultConfig().
func WithConfig(cfg mdnotion.Config) Option {
	return func(l *Lexer) {
		l.cfg = mdnotion.NewConfig(cfg.EmbedPrefixes, cfg.EmbedPatterns)
	}
}

// WithRecoverHook sets a callback invoked for every construct that failed to
// match and was re-tokenized as a paragraph. The hook must be safe for
// concurrent use when the Lexer is shared.
func WithRecoverHook(fn func(*SyntaxError)) Option {
	return func(l *Lexer) {
		l.onRecover = fn
	}
}

// Lexer is a markdown tokenizer. It holds only read-only configuration and
// is safe for concurrent use.
type Lexer struct {
	cfg       mdnotion.Config
	onRecover func(*SyntaxError)
}

// New creates a Lexer.
func New(opts ...Option) *Lexer {
	l := &Lexer{cfg: mdnotion.DefaultConfig()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize converts source into block tokens in source order.
func (l *Lexer) Tokenize(source string) []mdnotion.Token {
	s := scanner{
		cfg:       &l.cfg,
		onRecover: l.onRecover,
		src:       newlines.Replace(source),
	}
	return s.run()
}

// Tokenize converts source into block tokens using the default configuration.
func Tokenize(source string) []mdnotion.Token {
	return New().Tokenize(source)
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// scanner holds the state of a single tokenization run.
//
// pendingIndent counts the spaces consumed since the last emitted token or
// newline. It becomes the nesting of a list item and is reset whenever a
// token is emitted or a newline is consumed.
type scanner struct {
	cfg       *mdnotion.Config
	onRecover func(*SyntaxError)

	src           string
	cursor        int
	pendingIndent int
	tokens        []mdnotion.Token
}

func (s *scanner) run() []mdnotion.Token {
	for s.cursor < len(s.src) {
		s.step()
	}
	return s.tokens
}

func (s *scanner) step() {
	switch s.src[s.cursor] {
	case ' ':
		s.pendingIndent++
		s.cursor++
		return
	case '\n':
		s.pendingIndent = 0
		s.cursor++
		return
	}

	seg := s.segment()
	tok, n, err := s.dispatch(seg)
	if err != nil {
		var synErr *SyntaxError
		if errors.As(err, &synErr) && s.onRecover != nil {
			s.onRecover(synErr)
		}
		tok, n = paragraph(seg)
	}
	s.tokens = append(s.tokens, tok)
	s.cursor += n
	s.pendingIndent = 0
}

// segment returns the text the next construct is matched against: the
// current line, cut short before an image that does not start it. The text in
// front of the image is tokenized on its own, so a list item or quote keeps
// its marker and the image follows as a separate token.
func (s *scanner) segment() string {
	line := s.line()
	if line[0] == '#' {
		return line
	}
	if loc := imagePattern.FindStringIndex(line); loc != nil && loc[0] > 0 {
		return line[:loc[0]]
	}
	return line
}

// dispatch selects the block construct for seg, which starts at the cursor.
// Markers anchored to the cursor are mutually exclusive by first byte.
func (s *scanner) dispatch(seg string) (mdnotion.Token, int, error) {
	switch {
	case seg[0] == '#':
		return s.matchHeading(seg)
	case imagePattern.MatchString(seg):
		return s.matchImage(seg)
	case s.cfg.HasEmbedPrefix(seg):
		return s.matchEmbeddedFile(seg)
	case seg[0] == '>':
		return s.matchQuote(seg)
	case seg[0] == '-':
		return s.matchBulletList(seg)
	case isDigit(seg[0]):
		return s.matchNumberedList(seg)
	case strings.HasPrefix(seg, fence):
		tok, n := s.matchCodeBlock(s.src[s.cursor:])
		return tok, n, nil
	default:
		tok, n := paragraph(seg)
		return tok, n, nil
	}
}

// line returns the text from the cursor up to, not including, the next newline.
func (s *scanner) line() string {
	rest := s.src[s.cursor:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}

func (s *scanner) invalid(kind mdnotion.Kind, line string) error {
	return &SyntaxError{Kind: kind, Offset: s.cursor, Line: line}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
