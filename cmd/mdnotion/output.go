package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/mdnotion"
	"github.com/fwojciec/mdnotion/ansi"
	bt "github.com/fwojciec/mdnotion/bubbletea"
	mdjson "github.com/fwojciec/mdnotion/json"
	"github.com/fwojciec/mdnotion/markdown"
	"golang.org/x/term"
)

// writeResults encodes results in the selected format to the output file, or
// to stdout when none is set. A single JSON result written to a file is saved
// atomically.
func writeResults(opts options, results []mdnotion.Result, width int, theme mdnotion.Theme, stdout io.Writer) error {
	if opts.format == "json" && len(results) == 1 && opts.output != "" {
		if err := mdjson.Save(opts.output, results[0]); err != nil {
			return fmt.Errorf("save %s: %w", opts.output, err)
		}
		return nil
	}

	data, err := encode(opts.format, results, width, theme)
	if err != nil {
		return err
	}
	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(opts.output), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	return nil
}

// encode renders results. Several JSON results form an array of envelopes;
// several text or markdown results are each introduced by a header line.
func encode(format string, results []mdnotion.Result, width int, theme mdnotion.Theme) ([]byte, error) {
	var buf bytes.Buffer
	if format == "json" && len(results) > 1 {
		buf.WriteString("[\n")
	}
	for i, r := range results {
		switch format {
		case "json":
			data, err := mdjson.MarshalResult(r)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", sourceName(r), err)
			}
			if i > 0 {
				buf.WriteString(",\n")
			}
			buf.Write(data)
		case "text", "markdown":
			if len(results) > 1 {
				if i > 0 {
					buf.WriteString("\n")
				}
				fmt.Fprintf(&buf, "==> %s <==\n", sourceName(r))
			}
			if format == "text" {
				buf.WriteString(ansi.Render(r.Tokens, width, theme))
			} else {
				buf.WriteString(markdown.Source(r.Tokens))
			}
			if len(r.Tokens) > 0 {
				buf.WriteString("\n")
			}
		}
	}
	if format == "json" {
		if len(results) > 1 {
			buf.WriteString("\n]")
		}
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

func browse(ctx context.Context, results []mdnotion.Result, theme mdnotion.Theme) error {
	if len(results) != 1 {
		return fmt.Errorf("tui format needs exactly one document, got %d", len(results))
	}
	if err := bt.Run(ctx, bt.New(results[0], theme)); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

func sourceName(r mdnotion.Result) string {
	if r.Source == "" {
		return "stdin"
	}
	return r.Source
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
