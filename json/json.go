// Package json implements the versioned JSON wire format for tokenized
// documents.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/mdnotion"
)

const version = 1

// envelope is the v1 wire format for a tokenized document.
type envelope struct {
	Version int            `json:"version"`
	Source  string         `json:"source,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
	Tokens  []tokenDTO     `json:"tokens"`
}

// MarshalResult serializes a Result to JSON in v1 envelope format.
func MarshalResult(r mdnotion.Result) ([]byte, error) {
	env := envelope{
		Version: version,
		Source:  r.Source,
		Meta:    r.Meta,
		Tokens:  make([]tokenDTO, len(r.Tokens)),
	}
	for i, tok := range r.Tokens {
		dto, err := marshalToken(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		env.Tokens[i] = dto
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalResult validates data against the wire schema and deserializes a
// Result from it. Validation failures wrap mdnotion.ErrValidation.
func UnmarshalResult(data []byte) (mdnotion.Result, error) {
	if err := Validate(data); err != nil {
		return mdnotion.Result{}, err
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return mdnotion.Result{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != version {
		return mdnotion.Result{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	tokens := make([]mdnotion.Token, len(env.Tokens))
	for i, dto := range env.Tokens {
		tok, err := unmarshalToken(dto)
		if err != nil {
			return mdnotion.Result{}, fmt.Errorf("token %d: %w", i, err)
		}
		tokens[i] = tok
	}
	if err := mdnotion.ValidateTokens(tokens); err != nil {
		return mdnotion.Result{}, err
	}
	return mdnotion.Result{
		Source: env.Source,
		Meta:   env.Meta,
		Tokens: tokens,
	}, nil
}

// Save writes a Result to a JSON file, creating parent directories as needed.
func Save(path string, r mdnotion.Result) error {
	data, err := MarshalResult(r)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Result from a JSON file.
func Load(path string) (mdnotion.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mdnotion.Result{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalResult(data)
}
