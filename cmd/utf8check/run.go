package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/coregx/simdutf8"
	"github.com/coregx/simdutf8/compat"
	"github.com/coregx/simdutf8/internal/conv"
	"github.com/coregx/simdutf8/internal/dispatch"
)

const stdinName = "-"

// checker validates inputs with one backend and collects reports.
type checker struct {
	cfg    Config
	impl   *dispatch.Implementation
	logger *zap.Logger
	buf    []byte
}

// run executes the command and returns the process exit code. A non-nil
// error means the run was aborted.
func run(cli *CLI, stdin io.Reader, stdout io.Writer, logger *zap.Logger) (int, error) {
	simdutf8.SetLogger(logger)
	defer simdutf8.SetLogger(nil)

	if cli.ListBackends {
		return exitValid, listBackends(stdout)
	}

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		return exitError, err
	}

	impl, err := selectBackend(cfg.Backend)
	if err != nil {
		return exitError, err
	}
	logger.Debug("validating",
		zap.Stringer("backend", impl.Backend()),
		zap.Bool("exact", cfg.Exact),
		zap.Int("inputs", max(len(cli.Files), 1)),
	)

	c := &checker{cfg: cfg, impl: impl, logger: logger}
	files := cli.Files
	if len(files) == 0 {
		files = []string{stdinName}
	}

	reports := make([]Report, 0, len(files))
	code := exitValid
	for _, name := range files {
		report, err := c.checkFile(name, stdin)
		if err != nil {
			return exitError, err
		}
		if !report.Valid {
			code = exitInvalid
		}
		reports = append(reports, report)
	}

	if err := writeReports(stdout, cfg.Format, reports); err != nil {
		return exitError, err
	}
	return code, nil
}

// selectBackend resolves "auto" to the detected backend and any other name
// through a capability-checked lookup.
func selectBackend(name string) (*dispatch.Implementation, error) {
	if name == "auto" {
		return dispatch.Current(), nil
	}
	return dispatch.LookupName(name)
}

func (c *checker) checkFile(name string, stdin io.Reader) (Report, error) {
	if name == stdinName {
		return c.check(name, stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return Report{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return c.check(name, f)
}

func (c *checker) check(name string, r io.Reader) (Report, error) {
	var (
		report Report
		err    error
	)
	if c.cfg.Exact {
		report, err = c.checkExact(r)
	} else {
		report, err = c.checkStream(r)
	}
	if err != nil {
		return Report{}, fmt.Errorf("read %s: %w", name, err)
	}
	report.Name = name
	report.Backend = c.impl.Backend().String()

	c.logger.Debug("checked input",
		zap.String("name", name),
		zap.Int64("size", report.Size),
		zap.Bool("valid", report.Valid),
	)
	return report, nil
}

// checkStream reads r in BufferSize blocks. io.ReadFull keeps every block
// except the last full, so the chunk-aligned validator never has to buffer.
func (c *checker) checkStream(r io.Reader) (Report, error) {
	if c.buf == nil {
		c.buf = make([]byte, c.cfg.BufferSize)
	}
	v := c.impl.NewChunkedStreamer()

	var size int64
	for {
		n, err := io.ReadFull(r, c.buf)
		size += int64(n)
		switch {
		case err == nil:
			v.UpdateFromChunks(c.buf[:n])
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return Report{Valid: v.Finalize(c.buf[:n]), Size: size}, nil
		default:
			return Report{}, err
		}
	}
}

func (c *checker) checkExact(r io.Reader) (Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Report{}, err
	}
	report := Report{Size: int64(len(data))}

	validUpTo, errorLen := c.impl.Check(data)
	if validUpTo == len(data) {
		report.Valid = true
		return report, nil
	}

	e := &compat.Utf8Error{ValidUpTo: validUpTo, ErrorLen: conv.IntToUint8(errorLen)}
	line, column := position(data, validUpTo)
	report.Error = &ErrorDetail{
		ValidUpTo:  e.ValidUpTo,
		ErrorLen:   int(e.ErrorLen),
		Incomplete: e.Incomplete(),
		Line:       line,
		Column:     column,
		Message:    e.Error(),
	}
	return report, nil
}

// position returns the 1-based line and column of offset. data[:offset] must
// be valid UTF-8; columns count code points.
func position(data []byte, offset int) (line, column int) {
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	lineStart := bytes.LastIndexByte(prefix, '\n') + 1
	column = utf8.RuneCount(prefix[lineStart:]) + 1
	return line, column
}
