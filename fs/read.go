package fs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/adrg/frontmatter"
	"github.com/fwojciec/mdnotion"
)

// ReadDocument reads a markdown file from disk.
func ReadDocument(path string) (mdnotion.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mdnotion.Document{}, fmt.Errorf("read file: %w", err)
	}
	return ParseDocument(path, data)
}

// ParseDocument checks that data is text and splits off YAML or TOML front
// matter. Meta is nil when the document has none.
func ParseDocument(path string, data []byte) (mdnotion.Document, error) {
	if err := mdnotion.ValidateInput(data); err != nil {
		return mdnotion.Document{}, fmt.Errorf("%s: %w", path, err)
	}

	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return mdnotion.Document{}, fmt.Errorf("%s: parse front matter: %w", path, err)
	}

	doc := mdnotion.Document{Path: path, Body: string(body)}
	if len(meta) > 0 {
		doc.Meta = normalizeMap(meta)
	}
	return doc, nil
}

// normalizeMap converts nested YAML maps with interface keys into
// map[string]any so the metadata can be encoded as JSON.
func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeMap(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
