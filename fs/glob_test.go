package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mdnotion/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# "+name), 0o644))
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	t.Run("matches files with simple pattern", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFiles(t, dir, "a.md", "b.md", "c.txt")

		got, err := fs.Expand(dir, []string{"*.md"})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.md")}, got)
	})

	t.Run("matches files recursively with doublestar", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFiles(t, dir, "top.md", "docs/guide.md", "docs/deep/api.md", "docs/deep/skip.txt")

		got, err := fs.Expand(dir, []string{"docs/**/*.md"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "docs", "guide.md"),
			filepath.Join(dir, "docs", "deep", "api.md"),
		}, got)
	})

	t.Run("literal paths and absolute patterns", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFiles(t, dir, "notes/a.md")

		got, err := fs.Expand(".", []string{filepath.Join(dir, "notes", "a.md")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "notes", "a.md")}, got)
	})

	t.Run("keeps pattern order and drops duplicates", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFiles(t, dir, "a.md", "b.md")

		got, err := fs.Expand(dir, []string{"b.md", "*.md"})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "b.md"), filepath.Join(dir, "a.md")}, got)
	})

	t.Run("no match is an error", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFiles(t, dir, "a.txt")

		_, err := fs.Expand(dir, []string{"*.md"})
		assert.ErrorContains(t, err, "no files match")
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Expand(t.TempDir(), []string{"[invalid"})
		assert.ErrorContains(t, err, "invalid glob pattern")
	})

	t.Run("empty pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Expand(t.TempDir(), []string{""})
		assert.Error(t, err)
	})

	t.Run("missing base directory", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Expand(t.TempDir(), []string{"missing/*.md"})
		assert.Error(t, err)
	})
}
