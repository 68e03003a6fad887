package mdnotion_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/mdnotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "empty", input: nil},
		{name: "markdown", input: []byte("# Title\n\n- item\n")},
		{name: "tabs and crlf", input: []byte("a\tb\r\nc\r\n")},
		{name: "multibyte", input: []byte("zażółć gęślą jaźń")},
		{name: "invalid utf-8", input: []byte{'a', 0xff, 'b'}, wantErr: mdnotion.ErrInvalidUTF8},
		{name: "nul byte", input: []byte("a\x00b"), wantErr: mdnotion.ErrBinaryInput},
		{
			name:    "dense control bytes",
			input:   append(bytes.Repeat([]byte("x"), 60), 0x01, 0x02, 0x03, 0x04),
			wantErr: mdnotion.ErrBinaryInput,
		},
		{name: "short input with control byte", input: []byte("a\x01b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := mdnotion.ValidateInput(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	text := []mdnotion.Span{mdnotion.TextSpan{Text: "x"}}

	tests := []struct {
		name  string
		token mdnotion.Token
		valid bool
	}{
		{name: "heading", token: mdnotion.Heading{Level: 2, Text: text}, valid: true},
		{name: "heading level zero", token: mdnotion.Heading{Level: 0, Text: text}},
		{name: "heading level four", token: mdnotion.Heading{Level: 4, Text: text}},
		{name: "empty code block", token: mdnotion.CodeBlock{}, valid: true},
		{name: "bullet", token: mdnotion.BulletList{Text: text, Nesting: 4}, valid: true},
		{name: "bullet negative nesting", token: mdnotion.BulletList{Text: text, Nesting: -1}},
		{name: "numbered zero ordinal", token: mdnotion.NumberedList{Text: text, Ordinal: 0}, valid: true},
		{name: "numbered negative ordinal", token: mdnotion.NumberedList{Text: text, Ordinal: -1}},
		{name: "numbered negative nesting", token: mdnotion.NumberedList{Text: text, Ordinal: 1, Nesting: -2}},
		{name: "image", token: mdnotion.Image{URL: "a.png"}, valid: true},
		{name: "image without url", token: mdnotion.Image{}},
		{name: "embed", token: mdnotion.EmbeddedFile{URL: "https://x/a.mp4"}, valid: true},
		{name: "embed without url", token: mdnotion.EmbeddedFile{}},
		{name: "quote", token: mdnotion.Quote{Text: text}, valid: true},
		{name: "empty paragraph", token: mdnotion.Paragraph{}, valid: true},
		{
			name:  "paragraph with link",
			token: mdnotion.Paragraph{Text: []mdnotion.Span{mdnotion.LinkSpan{Text: "go", URL: "https://go.dev"}}},
			valid: true,
		},
		{
			name:  "paragraph with link missing url",
			token: mdnotion.Paragraph{Text: []mdnotion.Span{mdnotion.LinkSpan{Text: "go"}}},
		},
		{name: "nil token", token: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := mdnotion.ValidateToken(tt.token)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, mdnotion.ErrValidation)
		})
	}
}

func TestValidateTokens_ReportsIndex(t *testing.T) {
	t.Parallel()

	err := mdnotion.ValidateTokens([]mdnotion.Token{
		mdnotion.Paragraph{},
		mdnotion.Image{},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, mdnotion.ErrValidation)
	assert.Contains(t, err.Error(), "token 1")
}

func TestValidateTokens_Empty(t *testing.T) {
	t.Parallel()

	assert.NoError(t, mdnotion.ValidateTokens(nil))
}
