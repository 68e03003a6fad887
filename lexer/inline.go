package lexer

import (
	"strings"

	"github.com/fwojciec/mdnotion"
)

// RichText splits a block's text into an ordered, non-overlapping sequence of
// spans. At every position it tries inline code, bold, strikethrough, link
// and italic, in that order; bold must win over italic because both open with
// '*'. Characters where no span opens accumulate into plain text runs, so an
// unbalanced delimiter stays in the output as literal text.
//
// Re-applying each span's delimiters and concatenating reproduces text.
func RichText(text string) []mdnotion.Span {
	var spans []mdnotion.Span
	plain := 0
	for i := 0; i < len(text); {
		span, n := openSpan(text[i:])
		if n == 0 {
			i++
			continue
		}
		if i > plain {
			spans = append(spans, mdnotion.TextSpan{Text: strings.Clone(text[plain:i])})
		}
		spans = append(spans, span)
		i += n
		plain = i
	}
	if plain < len(text) {
		spans = append(spans, mdnotion.TextSpan{Text: strings.Clone(text[plain:])})
	}
	return spans
}

// openSpan returns the span starting at s[0] and the number of bytes it
// covers, or zero when no span opens there.
func openSpan(s string) (mdnotion.Span, int) {
	switch s[0] {
	case '`':
		if text, n := codeSpan(s); n > 0 {
			return mdnotion.CodeSpan{Text: text}, n
		}
	case '*':
		if text, n := delimited(s, "**"); n > 0 {
			return mdnotion.BoldSpan{Text: text}, n
		}
		if text, n := delimited(s, "*"); n > 0 {
			return mdnotion.ItalicSpan{Text: text}, n
		}
	case '~':
		if text, n := delimited(s, "~~"); n > 0 {
			return mdnotion.StrikethroughSpan{Text: text}, n
		}
	case '[':
		if text, url, n := link(s); n > 0 {
			return mdnotion.LinkSpan{Text: text, URL: url}, n
		}
	}
	return nil, 0
}

// codeSpan matches `...` with non-empty content, so a bare run of backticks
// stays plain text.
func codeSpan(s string) (string, int) {
	end := strings.IndexByte(s[1:], '`')
	if end <= 0 {
		return "", 0
	}
	return strings.Clone(s[1 : 1+end]), end + 2
}

// delimited matches delim, non-empty content free of delim's first byte, and
// delim again.
func delimited(s, delim string) (string, int) {
	if !strings.HasPrefix(s, delim) {
		return "", 0
	}
	inner := s[len(delim):]
	end := strings.IndexByte(inner, delim[0])
	if end <= 0 || !strings.HasPrefix(inner[end:], delim) {
		return "", 0
	}
	return strings.Clone(inner[:end]), 2*len(delim) + end
}

// link matches [text](url) with non-empty text and url.
func link(s string) (string, string, int) {
	closeText := strings.IndexByte(s, ']')
	if closeText <= 1 || closeText+1 >= len(s) || s[closeText+1] != '(' {
		return "", "", 0
	}
	urlStart := closeText + 2
	closeURL := strings.IndexByte(s[urlStart:], ')')
	if closeURL <= 0 {
		return "", "", 0
	}
	return strings.Clone(s[1:closeText]),
		strings.Clone(s[urlStart : urlStart+closeURL]),
		urlStart + closeURL + 1
}
