package json_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mdnotion"
	mdjson "github.com/fwojciec/mdnotion/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens() []mdnotion.Token {
	return []mdnotion.Token{
		mdnotion.Heading{Level: 2, Text: []mdnotion.Span{mdnotion.TextSpan{Text: "Setup"}}},
		mdnotion.CodeBlock{Text: "print(1)", Lang: "python"},
		mdnotion.CodeBlock{Text: "plain"},
		mdnotion.BulletList{
			Text: []mdnotion.Span{
				mdnotion.BoldSpan{Text: "bold"},
				mdnotion.TextSpan{Text: " and "},
				mdnotion.LinkSpan{Text: "docs", URL: "https://example.com"},
			},
			Nesting: 2,
		},
		mdnotion.NumberedList{Text: []mdnotion.Span{mdnotion.CodeSpan{Text: "go test"}}, Ordinal: 3},
		mdnotion.Image{URL: "https://example.com/a.png"},
		mdnotion.Quote{Text: []mdnotion.Span{mdnotion.ItalicSpan{Text: "quoted"}}},
		mdnotion.EmbeddedFile{URL: "https://user-images.githubusercontent.com/1/clip.mp4"},
		mdnotion.Paragraph{Text: []mdnotion.Span{mdnotion.StrikethroughSpan{Text: "gone"}}},
	}
}

func TestMarshalResult_RoundTrip(t *testing.T) {
	t.Parallel()
	result := mdnotion.Result{
		Source: "notes/readme.md",
		Meta:   map[string]any{"title": "Readme"},
		Tokens: allTokens(),
	}

	data, err := mdjson.MarshalResult(result)
	require.NoError(t, err)

	got, err := mdjson.UnmarshalResult(data)
	require.NoError(t, err)

	assert.Equal(t, result.Source, got.Source)
	assert.Equal(t, result.Meta, got.Meta)
	assert.Equal(t, result.Tokens, got.Tokens)
}

func TestMarshalResult_V1Envelope(t *testing.T) {
	t.Parallel()
	data, err := mdjson.MarshalResult(mdnotion.Result{Source: "a.md"})
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &envelope))

	var version int
	require.NoError(t, json.Unmarshal(envelope["version"], &version))
	assert.Equal(t, 1, version)

	// Empty results still carry an array, never null.
	assert.JSONEq(t, `[]`, string(envelope["tokens"]))

	_, ok := envelope["meta"]
	assert.False(t, ok, "expected meta to be omitted")
}

func TestMarshalResult_JSONFieldNames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		token mdnotion.Token
		want  string
	}{
		{
			name:  "heading",
			token: mdnotion.Heading{Level: 1, Text: []mdnotion.Span{mdnotion.TextSpan{Text: "Title"}}},
			want:  `{"type":"heading","level":1,"rich_text":[{"type":"text","text":"Title"}]}`,
		},
		{
			name:  "code block",
			token: mdnotion.CodeBlock{Text: "x := 1", Lang: "go"},
			want:  `{"type":"code_block","text":"x := 1","lang":"go"}`,
		},
		{
			name:  "bullet list",
			token: mdnotion.BulletList{Text: []mdnotion.Span{mdnotion.TextSpan{Text: "item"}}, Nesting: 0},
			want:  `{"type":"bullet_list","rich_text":[{"type":"text","text":"item"}],"nesting":0}`,
		},
		{
			name:  "numbered list",
			token: mdnotion.NumberedList{Text: []mdnotion.Span{mdnotion.TextSpan{Text: "step"}}, Ordinal: 7, Nesting: 1},
			want:  `{"type":"numbered_list","rich_text":[{"type":"text","text":"step"}],"ordinal":7,"nesting":1}`,
		},
		{
			name:  "image",
			token: mdnotion.Image{URL: "https://example.com/a.png"},
			want:  `{"type":"image","url":"https://example.com/a.png"}`,
		},
		{
			name:  "embedded file",
			token: mdnotion.EmbeddedFile{URL: "https://example.com/v.mov"},
			want:  `{"type":"embedded_file","url":"https://example.com/v.mov"}`,
		},
		{
			name:  "link span",
			token: mdnotion.Paragraph{Text: []mdnotion.Span{mdnotion.LinkSpan{Text: "here", URL: "https://example.com"}}},
			want:  `{"type":"paragraph","rich_text":[{"type":"link","text":"here","link":"https://example.com"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := mdjson.MarshalResult(mdnotion.Result{Tokens: []mdnotion.Token{tt.token}})
			require.NoError(t, err)

			var envelope struct {
				Tokens []json.RawMessage `json:"tokens"`
			}
			require.NoError(t, json.Unmarshal(data, &envelope))
			require.Len(t, envelope.Tokens, 1)
			assert.JSONEq(t, tt.want, string(envelope.Tokens[0]))
		})
	}
}

func TestSave_And_Load(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")

	result := mdnotion.Result{Source: "a.md", Tokens: allTokens()}

	err := mdjson.Save(path, result)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "expected temp file to be renamed")

	got, err := mdjson.Load(path)
	require.NoError(t, err)
	assert.Equal(t, result.Tokens, got.Tokens)
}

func TestLoad_NonexistentFile(t *testing.T) {
	t.Parallel()
	_, err := mdjson.Load("/nonexistent/path/result.json")
	assert.Error(t, err)
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "result.json")

	err := mdjson.Save(path, mdnotion.Result{Source: "nested.md"})
	require.NoError(t, err)

	got, err := mdjson.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nested.md", got.Source)
	assert.Empty(t, got.Tokens)
}

func TestUnmarshalResult_InvalidPayloads(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{"version":`},
		{name: "missing tokens", data: `{"version": 1}`},
		{name: "unsupported version", data: `{"version": 99, "tokens": []}`},
		{name: "unknown token type", data: `{"version": 1, "tokens": [{"type": "table"}]}`},
		{name: "unknown span type", data: `{"version": 1, "tokens": [{"type": "paragraph", "rich_text": [{"type": "underline", "text": "x"}]}]}`},
		{name: "heading level out of range", data: `{"version": 1, "tokens": [{"type": "heading", "level": 4}]}`},
		{name: "heading without level", data: `{"version": 1, "tokens": [{"type": "heading"}]}`},
		{name: "negative nesting", data: `{"version": 1, "tokens": [{"type": "bullet_list", "nesting": -1}]}`},
		{name: "image without url", data: `{"version": 1, "tokens": [{"type": "image"}]}`},
		{name: "unknown field", data: `{"version": 1, "tokens": [{"type": "quote", "color": "red"}]}`},
		{name: "link span without url", data: `{"version": 1, "tokens": [{"type": "paragraph", "rich_text": [{"type": "link", "text": "x"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := mdjson.UnmarshalResult([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, mdnotion.ErrValidation)
		})
	}
}

func TestValidate_AcceptsMarshaledOutput(t *testing.T) {
	t.Parallel()
	data, err := mdjson.MarshalResult(mdnotion.Result{
		Source: "a.md",
		Meta:   map[string]any{"tags": []any{"a", "b"}},
		Tokens: allTokens(),
	})
	require.NoError(t, err)
	assert.NoError(t, mdjson.Validate(data))
}
