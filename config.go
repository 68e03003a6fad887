package mdnotion

import (
	"fmt"
	"regexp"
	"strings"
)

// GitHubUserImagesPrefix is the URL prefix of media uploaded to GitHub issues
// and pull requests.
const GitHubUserImagesPrefix = "https://user-images.githubusercontent.com/"

var gitHubUserImagesPattern = regexp.MustCompile(`https://user-images\.githubusercontent\.com/\S+\.[a-zA-Z0-9]+`)

// Config is the embedded-media allow-list used during tokenization.
// A Config is never mutated after construction, so one value can be shared by
// concurrent tokenizations.
type Config struct {
	// EmbedPrefixes are URL prefixes that mark the start of embeddable media.
	EmbedPrefixes []string
	// EmbedPatterns extract the full media URL from a line, tried in order.
	EmbedPatterns []*regexp.Regexp
}

// NewConfig returns a Config holding copies of the given slices.
func NewConfig(prefixes []string, patterns []*regexp.Regexp) Config {
	return Config{
		EmbedPrefixes: append([]string(nil), prefixes...),
		EmbedPatterns: append([]*regexp.Regexp(nil), patterns...),
	}
}

// DefaultConfig returns a Config that recognizes GitHub user-images uploads.
func DefaultConfig() Config {
	return NewConfig(
		[]string{GitHubUserImagesPrefix},
		[]*regexp.Regexp{gitHubUserImagesPattern},
	)
}

// Validate checks that the allow-list has no empty prefixes or nil patterns.
// An empty Config is valid and disables embedded-media recognition.
func (c Config) Validate() error {
	for i, p := range c.EmbedPrefixes {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("embed prefix %d is empty: %w", i, ErrValidation)
		}
	}
	for i, re := range c.EmbedPatterns {
		if re == nil {
			return fmt.Errorf("embed pattern %d is nil: %w", i, ErrValidation)
		}
	}
	return nil
}

// HasEmbedPrefix reports whether s starts with one of the allow-listed
// prefixes. Each prefix is compared at its own length.
func (c Config) HasEmbedPrefix(s string) bool {
	for _, p := range c.EmbedPrefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
