// Package mock provides function-field test doubles for mdnotion interfaces.
package mock

import "github.com/fwojciec/mdnotion"

// Interface compliance check.
var _ mdnotion.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a test double for mdnotion.Tokenizer.
// Set TokenizeFn before calling Tokenize.
type Tokenizer struct {
	TokenizeFn func(source string) []mdnotion.Token
}

// Tokenize delegates to TokenizeFn.
func (t *Tokenizer) Tokenize(source string) []mdnotion.Token {
	return t.TokenizeFn(source)
}
