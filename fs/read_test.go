package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mdnotion"
	"github.com/fwojciec/mdnotion/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	t.Run("document without front matter", func(t *testing.T) {
		t.Parallel()
		doc, err := fs.ParseDocument("a.md", []byte("# Title\nbody\n"))
		require.NoError(t, err)
		assert.Equal(t, "a.md", doc.Path)
		assert.Nil(t, doc.Meta)
		assert.Equal(t, "# Title\nbody\n", doc.Body)
	})

	t.Run("yaml front matter is split from the body", func(t *testing.T) {
		t.Parallel()
		data := []byte("---\ntitle: Notes\ntags:\n  - a\n  - b\nextra:\n  owner: me\n---\n# Title\n")
		doc, err := fs.ParseDocument("a.md", data)
		require.NoError(t, err)
		assert.Equal(t, "Notes", doc.Meta["title"])
		assert.Equal(t, []any{"a", "b"}, doc.Meta["tags"])
		assert.Equal(t, map[string]any{"owner": "me"}, doc.Meta["extra"])
		assert.Contains(t, doc.Body, "# Title")
		assert.NotContains(t, doc.Body, "title: Notes")
	})

	t.Run("binary input is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := fs.ParseDocument("a.bin", []byte{'a', 0, 'b'})
		assert.ErrorIs(t, err, mdnotion.ErrBinaryInput)
	})

	t.Run("invalid utf8 is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := fs.ParseDocument("a.md", []byte{0xff, 0xfe, 'a'})
		assert.ErrorIs(t, err, mdnotion.ErrInvalidUTF8)
	})
}

func TestReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads file from disk", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("- item\n"), 0o644))

		doc, err := fs.ReadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, path, doc.Path)
		assert.Equal(t, "- item\n", doc.Body)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := fs.ReadDocument(filepath.Join(t.TempDir(), "missing.md"))
		assert.Error(t, err)
	})
}
