package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/term"

	"github.com/coregx/simdutf8/internal/dispatch"
)

// Report is the result for one input.
type Report struct {
	Name    string       `json:"name" cbor:"1,keyasint"`
	Valid   bool         `json:"valid" cbor:"2,keyasint"`
	Size    int64        `json:"size" cbor:"3,keyasint"`
	Backend string       `json:"backend" cbor:"4,keyasint"`
	Error   *ErrorDetail `json:"error,omitempty" cbor:"5,keyasint,omitempty"`
}

// ErrorDetail locates the first error. It is only filled in exact mode.
type ErrorDetail struct {
	ValidUpTo  int    `json:"valid_up_to" cbor:"1,keyasint"`
	ErrorLen   int    `json:"error_len" cbor:"2,keyasint"`
	Incomplete bool   `json:"incomplete" cbor:"3,keyasint"`
	Line       int    `json:"line" cbor:"4,keyasint"`
	Column     int    `json:"column" cbor:"5,keyasint"`
	Message    string `json:"message" cbor:"6,keyasint"`
}

var (
	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	invalidStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// cborEncMode uses canonical encoding so identical reports encode to
// identical bytes.
var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

func writeReports(w io.Writer, format string, reports []Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatCBOR:
		data, err := cborEncMode.Marshal(reports)
		if err != nil {
			return fmt.Errorf("encode cbor: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return writeText(w, reports, isTerminal(w))
	}
}

func writeText(w io.Writer, reports []Report, styled bool) error {
	render := func(s lipgloss.Style, text string) string {
		if styled {
			return s.Render(text)
		}
		return text
	}

	for _, r := range reports {
		var line string
		switch {
		case r.Valid:
			line = r.Name + ": " + render(okStyle, "ok")
		case r.Error != nil:
			line = r.Name + ": " + render(invalidStyle, r.Error.Message) +
				render(detailStyle, fmt.Sprintf(" (line %d, column %d)", r.Error.Line, r.Error.Column))
		default:
			line = r.Name + ": " + render(invalidStyle, "invalid utf-8")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// listBackends prints every backend with its lane width and whether this CPU
// can run it. The auto-selected backend is marked.
func listBackends(w io.Writer) error {
	current := dispatch.Current().Backend()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("BACKEND", "LANE WIDTH", "SUPPORTED", "SELECTED")
	for _, b := range dispatch.Backends() {
		width := "-"
		if b.LaneWidth() > 0 {
			width = strconv.Itoa(b.LaneWidth())
		}
		selected := ""
		if b == current {
			selected = "*"
		}
		t.Row(b.String(), width, strconv.FormatBool(dispatch.Supported(b)), selected)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
