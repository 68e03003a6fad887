package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves glob patterns to regular files. Relative patterns are
// resolved against root; absolute patterns are used as they are. Patterns
// support ** for recursive matching. Results keep pattern order, each
// pattern's matches in walk order, and every path appears once.
func Expand(root string, patterns []string) ([]string, error) {
	var matches []string
	seen := make(map[string]bool)

	for _, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("glob pattern is empty")
		}
		base, pattern := doublestar.SplitPattern(filepath.ToSlash(p))
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern: %s", p)
		}

		dir := filepath.FromSlash(base)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("access %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}

		n := 0
		err = doublestar.GlobWalk(os.DirFS(dir), pattern, func(path string, d iofs.DirEntry) error {
			if d.IsDir() {
				return nil
			}
			n++
			full := filepath.Join(dir, filepath.FromSlash(path))
			if !seen[full] {
				seen[full] = true
				matches = append(matches, full)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", p, err)
		}
		if n == 0 {
			return nil, fmt.Errorf("no files match %s", p)
		}
	}
	return matches, nil
}
