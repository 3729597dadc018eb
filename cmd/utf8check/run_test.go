package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"

	"github.com/coregx/simdutf8/internal/dispatch"
)

func newCLI(files ...string) *CLI {
	cfg := DefaultConfig()
	return &CLI{
		Files:      files,
		Format:     cfg.Format,
		BufferSize: cfg.BufferSize,
		Backend:    cfg.Backend,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runJSON(t *testing.T, cli *CLI, stdin string) (int, []Report) {
	t.Helper()
	cli.Format = FormatJSON
	var out bytes.Buffer
	code, err := run(cli, strings.NewReader(stdin), &out, zap.NewNop())
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	var reports []Report
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatalf("decode output %q: %v", out.String(), err)
	}
	return code, reports
}

func TestRunText(t *testing.T) {
	good := writeFile(t, "good.txt", "grüß dich\n")
	bad := writeFile(t, "bad.txt", "abc\xff")

	var out bytes.Buffer
	code, err := run(newCLI(good, bad), nil, &out, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if code != exitInvalid {
		t.Errorf("exit code = %d, want %d", code, exitInvalid)
	}
	want := good + ": ok\n" + bad + ": invalid utf-8\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunAllValid(t *testing.T) {
	path := writeFile(t, "a.txt", strings.Repeat("€uro ", 1000))
	code, reports := runJSON(t, newCLI(path), "")
	if code != exitValid {
		t.Errorf("exit code = %d, want %d", code, exitValid)
	}
	if len(reports) != 1 || !reports[0].Valid || reports[0].Size != 7000 {
		t.Errorf("reports = %+v", reports)
	}
}

func TestRunStreamingBlockBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"sequence across block", strings.Repeat("a", 63) + "🎉" + strings.Repeat("b", 100), true},
		{"exactly one block", strings.Repeat("é", 32), true},
		{"truncated at block end", strings.Repeat("a", 62) + "\xe2\x82", false},
		{"error in second block", strings.Repeat("a", 100) + "\xc0\x80", false},
		{"empty", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cli := newCLI()
			cli.BufferSize = 64
			code, reports := runJSON(t, cli, tc.input)
			if reports[0].Valid != tc.valid {
				t.Errorf("valid = %v, want %v", reports[0].Valid, tc.valid)
			}
			if (code == exitValid) != tc.valid {
				t.Errorf("exit code = %d", code)
			}
			if reports[0].Name != stdinName || reports[0].Size != int64(len(tc.input)) {
				t.Errorf("report = %+v", reports[0])
			}
		})
	}
}

func TestRunExact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ErrorDetail
	}{
		{
			"invalid byte on second line",
			"line one\nzwei \xff",
			ErrorDetail{ValidUpTo: 14, ErrorLen: 1, Line: 2, Column: 6,
				Message: "invalid utf-8 sequence of 1 bytes from index 14"},
		},
		{
			"incomplete after multibyte",
			"ab\nüü\xe2\x82",
			ErrorDetail{ValidUpTo: 7, Incomplete: true, Line: 2, Column: 3,
				Message: "incomplete utf-8 byte sequence from index 7"},
		},
		{
			"cut sequence",
			"\xe2\x82(",
			ErrorDetail{ValidUpTo: 0, ErrorLen: 2, Line: 1, Column: 1,
				Message: "invalid utf-8 sequence of 2 bytes from index 0"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cli := newCLI()
			cli.Exact = true
			code, reports := runJSON(t, cli, tc.input)
			if code != exitInvalid {
				t.Errorf("exit code = %d, want %d", code, exitInvalid)
			}
			got := reports[0].Error
			if got == nil {
				t.Fatal("report has no error detail")
			}
			if *got != tc.want {
				t.Errorf("error detail = %+v, want %+v", *got, tc.want)
			}
		})
	}
}

func TestRunExactText(t *testing.T) {
	cli := newCLI()
	cli.Exact = true
	var out bytes.Buffer
	if _, err := run(cli, strings.NewReader("x\ny\xc3"), &out, zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	want := "-: incomplete utf-8 byte sequence from index 3 (line 2, column 2)\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunCBOR(t *testing.T) {
	cli := newCLI()
	cli.Format = FormatCBOR
	cli.Exact = true
	var out bytes.Buffer
	code, err := run(cli, strings.NewReader("ok\x80"), &out, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if code != exitInvalid {
		t.Errorf("exit code = %d, want %d", code, exitInvalid)
	}

	var reports []Report
	if err := cbor.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Error == nil || reports[0].Error.ValidUpTo != 2 {
		t.Errorf("reports = %+v", reports)
	}
}

func TestRunForcedBackend(t *testing.T) {
	cli := newCLI()
	cli.Backend = "scalar"
	_, reports := runJSON(t, cli, "héllo")
	if reports[0].Backend != "scalar" {
		t.Errorf("backend = %q, want scalar", reports[0].Backend)
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		cli := newCLI()
		cli.Backend = "mmx"
		code, err := run(cli, strings.NewReader(""), &bytes.Buffer{}, zap.NewNop())
		if code != exitError || !errors.Is(err, dispatch.ErrUnknownBackend) {
			t.Errorf("run() = %d, %v; want %d, ErrUnknownBackend", code, err, exitError)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		cli := newCLI(filepath.Join(t.TempDir(), "missing"))
		code, err := run(cli, nil, &bytes.Buffer{}, zap.NewNop())
		if code != exitError || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("run() = %d, %v; want %d, ErrNotExist", code, err, exitError)
		}
	})
	t.Run("bad buffer size", func(t *testing.T) {
		cli := newCLI()
		cli.BufferSize = 65
		code, err := run(cli, strings.NewReader(""), &bytes.Buffer{}, zap.NewNop())
		var cfgErr *ConfigError
		if code != exitError || !errors.As(err, &cfgErr) {
			t.Errorf("run() = %d, %v; want %d, *ConfigError", code, err, exitError)
		}
	})
}

func TestListBackends(t *testing.T) {
	cli := newCLI()
	cli.ListBackends = true
	var out bytes.Buffer
	code, err := run(cli, nil, &out, zap.NewNop())
	if err != nil || code != exitValid {
		t.Fatalf("run() = %d, %v", code, err)
	}
	for _, b := range dispatch.Backends() {
		if !strings.Contains(out.String(), b.String()) {
			t.Errorf("backend list is missing %s:\n%s", b, out.String())
		}
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		data         string
		offset       int
		line, column int
	}{
		{"", 0, 1, 1},
		{"abc", 3, 1, 4},
		{"a\nb", 2, 2, 1},
		{"a\n\n", 3, 3, 1},
		{"日本\n語x", 10, 2, 2},
	}
	for _, tc := range tests {
		line, column := position([]byte(tc.data), tc.offset)
		if line != tc.line || column != tc.column {
			t.Errorf("position(%q, %d) = %d:%d, want %d:%d", tc.data, tc.offset, line, column, tc.line, tc.column)
		}
	}
}
