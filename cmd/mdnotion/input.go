package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/mdnotion"
	"github.com/fwojciec/mdnotion/config"
	"github.com/fwojciec/mdnotion/fs"
	"github.com/fwojciec/mdnotion/goldmark"
	mdjson "github.com/fwojciec/mdnotion/json"
	"github.com/fwojciec/mdnotion/lexer"
)

func loadConfig(path string) (mdnotion.Config, error) {
	if path == "" {
		return mdnotion.DefaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return mdnotion.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newTokenizer selects the tokenizer backend. Recovered lexer failures are
// logged at debug level.
func newTokenizer(backend string, cfg mdnotion.Config, log logger) (mdnotion.Tokenizer, error) {
	switch backend {
	case "lexer":
		return lexer.New(
			lexer.WithConfig(cfg),
			lexer.WithRecoverHook(func(e *lexer.SyntaxError) {
				log.Debug("recovered as paragraph", "kind", string(e.Kind), "offset", e.Offset, "line", e.Line)
			}),
		), nil
	case "goldmark":
		return goldmark.New(goldmark.WithConfig(cfg)), nil
	default:
		return nil, fmt.Errorf("unknown backend %q: must be \"lexer\" or \"goldmark\"", backend)
	}
}

// readInputs reads markdown documents from the expanded input patterns, or a
// single document from stdin when there are none.
func readInputs(patterns []string, stdin io.Reader) ([]mdnotion.Document, error) {
	if len(patterns) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		doc, err := fs.ParseDocument("", data)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return []mdnotion.Document{doc}, nil
	}

	paths, err := fs.Expand(".", patterns)
	if err != nil {
		return nil, err
	}
	docs := make([]mdnotion.Document, len(paths))
	for i, path := range paths {
		doc, err := fs.ReadDocument(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		docs[i] = doc
	}
	return docs, nil
}

// loadResults reads previously saved JSON results.
func loadResults(patterns []string) ([]mdnotion.Result, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("--from-json needs at least one input file")
	}
	paths, err := fs.Expand(".", patterns)
	if err != nil {
		return nil, err
	}
	results := make([]mdnotion.Result, len(paths))
	for i, path := range paths {
		r, err := mdjson.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		results[i] = r
	}
	return results, nil
}
