// Command mdnotion tokenizes markdown into Notion-style blocks.
//
// Usage:
//
//	mdnotion [flags] [inputs...]
//
// Inputs are files or glob patterns (** matches across directories). Without
// inputs, markdown is read from stdin.
//
// Flags:
//
//	-f, --format string     Output format: json, text, markdown, tui (default "json")
//	-b, --backend string    Tokenizer: lexer, goldmark (default "lexer")
//	-c, --config string     YAML embed allow-list (default: GitHub user-images)
//	-o, --output string     Output file instead of stdout
//	-w, --width int         Render width for text and tui (0 uses terminal width)
//	-j, --jobs int          Documents tokenized in parallel (default: CPU count)
//	    --from-json         Inputs are saved JSON results instead of markdown
//	    --print-config      Print the default config file and exit
//	    --log-level string  Log to stderr at trace, debug, info, warn or error
//	    --version           Print version and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/fwojciec/mdnotion"
	"github.com/fwojciec/mdnotion/config"
	"github.com/spf13/pflag"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("github.com/fwojciec/mdnotion")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "mdnotion: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	format   string
	backend  string
	config   string
	output   string
	width    int
	jobs     int
	fromJSON bool
	printCfg bool
	logLevel string
	version  bool
	inputs   []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	flags := pflag.NewFlagSet("mdnotion", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", "json", "Output format: json, text, markdown, tui")
	flags.StringVarP(&opts.backend, "backend", "b", "lexer", "Tokenizer: lexer, goldmark")
	flags.StringVarP(&opts.config, "config", "c", "", "YAML embed allow-list (default: GitHub user-images)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file instead of stdout")
	flags.IntVarP(&opts.width, "width", "w", 0, "Render width for text and tui (0 uses terminal width)")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Documents tokenized in parallel")
	flags.BoolVar(&opts.fromJSON, "from-json", false, "Inputs are saved JSON results instead of markdown")
	flags.BoolVar(&opts.printCfg, "print-config", false, "Print the default config file and exit")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log to stderr at trace, debug, info, warn or error")
	flags.BoolVar(&opts.version, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdnotion [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	opts.inputs = flags.Args()
	opts.format = strings.ToLower(strings.TrimSpace(opts.format))
	opts.backend = strings.ToLower(strings.TrimSpace(opts.backend))

	switch opts.format {
	case "json", "text", "markdown", "tui":
	default:
		return options{}, fmt.Errorf("unknown format %q: must be json, text, markdown or tui", opts.format)
	}
	if opts.jobs < 1 {
		return options{}, fmt.Errorf("jobs must be at least 1, got %d", opts.jobs)
	}
	if opts.width < 0 {
		return options{}, fmt.Errorf("width must not be negative, got %d", opts.width)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return nil
	}
	if opts.printCfg {
		data, err := config.Marshal(config.Default())
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	log, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}

	var results []mdnotion.Result
	if opts.fromJSON {
		results, err = loadResults(opts.inputs)
		if err != nil {
			return err
		}
		log.Info("loaded results", "count", len(results))
	} else {
		cfg, err := loadConfig(opts.config)
		if err != nil {
			return err
		}
		tok, err := newTokenizer(opts.backend, cfg, log)
		if err != nil {
			return err
		}
		docs, err := readInputs(opts.inputs, stdin)
		if err != nil {
			return err
		}
		log.Info("tokenizing", "documents", len(docs), "backend", opts.backend, "jobs", opts.jobs)
		results, err = tokenizeAll(ctx, tok, docs, opts.jobs)
		if err != nil {
			return err
		}
	}

	width := resolveWidth(opts.width)
	theme := mdnotion.DefaultTheme()
	if opts.format == "tui" {
		return browse(ctx, results, theme)
	}
	return writeResults(opts, results, width, theme, stdout)
}
