package mdnotion

import (
	"fmt"
	"unicode/utf8"
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if src is not valid UTF-8 or appears to be
// binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var control int
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	switch {
	case b < 0x09:
		return true
	case b > 0x0D && b < 0x20:
		return true
	case b == 0x7F:
		return true
	}
	return false
}

// ValidateTokens checks every token with ValidateToken.
func ValidateTokens(tokens []Token) error {
	for i, tok := range tokens {
		if err := ValidateToken(tok); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
	}
	return nil
}

// ValidateToken checks the structural constraints of a single token.
// Tokenizers always produce valid tokens; this guards tokens decoded from
// external payloads.
func ValidateToken(tok Token) error {
	switch t := tok.(type) {
	case Heading:
		if t.Level < 1 || t.Level > 3 {
			return fmt.Errorf("heading level must be in [1, 3], got %d: %w", t.Level, ErrValidation)
		}
		return validateSpans(t.Text, t.Kind())
	case CodeBlock:
		return nil
	case BulletList:
		if t.Nesting < 0 {
			return fmt.Errorf("nesting must be non-negative, got %d: %w", t.Nesting, ErrValidation)
		}
		return validateSpans(t.Text, t.Kind())
	case NumberedList:
		if t.Nesting < 0 {
			return fmt.Errorf("nesting must be non-negative, got %d: %w", t.Nesting, ErrValidation)
		}
		if t.Ordinal < 0 {
			return fmt.Errorf("ordinal must be non-negative, got %d: %w", t.Ordinal, ErrValidation)
		}
		return validateSpans(t.Text, t.Kind())
	case Image:
		if t.URL == "" {
			return fmt.Errorf("image url is empty: %w", ErrValidation)
		}
		return nil
	case Quote:
		return validateSpans(t.Text, t.Kind())
	case EmbeddedFile:
		if t.URL == "" {
			return fmt.Errorf("embedded file url is empty: %w", ErrValidation)
		}
		return nil
	case Paragraph:
		return validateSpans(t.Text, t.Kind())
	default:
		return fmt.Errorf("unknown token type %T: %w", tok, ErrValidation)
	}
}

func validateSpans(spans []Span, kind Kind) error {
	for _, s := range spans {
		switch v := s.(type) {
		case CodeSpan, BoldSpan, ItalicSpan, StrikethroughSpan, TextSpan:
		case LinkSpan:
			if v.URL == "" {
				return fmt.Errorf("link span without url in %s: %w", kind, ErrValidation)
			}
		default:
			return fmt.Errorf("unknown span type %T in %s: %w", s, kind, ErrValidation)
		}
	}
	return nil
}
