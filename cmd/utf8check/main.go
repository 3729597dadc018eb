// Command utf8check validates that files are well-formed UTF-8.
//
// With no file arguments it reads standard input. The exit status is 0 when
// every input is valid, 1 when at least one is not, and 2 on usage or I/O
// errors.
//
// Usage:
//
//	utf8check [flags] [FILE...]
//
// Examples:
//
//	utf8check notes.txt
//	utf8check --exact --format json *.csv
//	cat dump.bin | utf8check --backend scalar
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

// CLI defines the utf8check command-line interface.
type CLI struct {
	Files        []string `arg:"" optional:"" help:"Files to validate; standard input when none are given (\"-\" also means standard input)"`
	Exact        bool     `short:"e" help:"Report the position of the first error; reads each input into memory"`
	Format       string   `short:"f" enum:"text,json,cbor" default:"text" help:"Output format (text, json, cbor)"`
	BufferSize   int      `default:"65536" help:"Streaming read size in bytes; a multiple of 64"`
	Backend      string   `short:"b" default:"auto" help:"Validation backend: auto, or a name shown by --list-backends"`
	ListBackends bool     `help:"List validation backends and exit"`
	Verbose      bool     `short:"v" help:"Enable debug logging to stderr"`
}

// Config converts the parsed flags into a Config.
func (c *CLI) Config() Config {
	cfg := DefaultConfig()
	cfg.Exact = c.Exact
	cfg.Format = c.Format
	cfg.BufferSize = c.BufferSize
	cfg.Backend = c.Backend
	return cfg
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("utf8check"),
		kong.Description("Validate UTF-8 using the fastest backend this CPU supports."),
	)

	logger, err := newLogger(cli.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "utf8check:", err)
		os.Exit(exitError)
	}

	code, err := run(&cli, os.Stdin, os.Stdout, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "utf8check:", err)
		code = exitError
	}
	_ = logger.Sync()
	os.Exit(code)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}
