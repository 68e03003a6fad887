// Package config loads the embedded-media allow-list from a YAML file.
//
//	embed_prefixes:
//	  - https://user-images.githubusercontent.com/
//	embed_patterns:
//	  - https://user-images\.githubusercontent\.com/\S+\.[a-zA-Z0-9]+
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/fwojciec/mdnotion"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration format.
type File struct {
	EmbedPrefixes []string `yaml:"embed_prefixes" json:"embed_prefixes"`
	EmbedPatterns []string `yaml:"embed_patterns" json:"embed_patterns"`
}

// Validate checks that both lists are present, prefixes are http(s) URLs and
// patterns compile.
func (f File) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.EmbedPrefixes,
			validation.Required,
			validation.Each(validation.Required, validation.By(httpPrefix)),
		),
		validation.Field(&f.EmbedPatterns,
			validation.Required,
			validation.Each(validation.Required, validation.By(compiles)),
		),
	)
}

func httpPrefix(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return validation.NewError("validation_is_http_prefix", "must be an http or https URL prefix")
	}
	return nil
}

func compiles(value any) error {
	s, _ := value.(string)
	if isBlank(s) {
		return validation.NewError("validation_is_regexp", "must not be blank")
	}
	if _, err := regexp.Compile(s); err != nil {
		return validation.NewError("validation_is_regexp", fmt.Sprintf("must be a valid regular expression: %v", err))
	}
	return nil
}

// Config compiles the file into an mdnotion.Config.
func (f File) Config() (mdnotion.Config, error) {
	if err := f.Validate(); err != nil {
		return mdnotion.Config{}, fmt.Errorf("%w: %w", mdnotion.ErrValidation, err)
	}
	patterns := make([]*regexp.Regexp, len(f.EmbedPatterns))
	for i, p := range f.EmbedPatterns {
		patterns[i] = regexp.MustCompile(p)
	}
	cfg := mdnotion.NewConfig(f.EmbedPrefixes, patterns)
	if err := cfg.Validate(); err != nil {
		return mdnotion.Config{}, err
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration. Unknown keys are
// rejected.
func Parse(data []byte) (mdnotion.Config, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return mdnotion.Config{}, fmt.Errorf("%w: decode config: %w", mdnotion.ErrValidation, err)
	}
	return f.Config()
}

// Load reads and parses a YAML configuration file.
func Load(path string) (mdnotion.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mdnotion.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return mdnotion.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the file form of mdnotion.DefaultConfig.
func Default() File {
	cfg := mdnotion.DefaultConfig()
	f := File{EmbedPrefixes: append([]string(nil), cfg.EmbedPrefixes...)}
	for _, re := range cfg.EmbedPatterns {
		f.EmbedPatterns = append(f.EmbedPatterns, re.String())
	}
	return f
}

// Marshal encodes f as YAML.
func Marshal(f File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// isBlank reports whether s holds only whitespace.
func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
