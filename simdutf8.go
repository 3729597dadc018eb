// Package simdutf8 validates UTF-8 using the widest vector lanes the running
// CPU supports.
//
// Validation runs 64 bytes at a time through a table-driven classification
// kernel and falls back to a scalar decoder for short inputs. Results are
// identical to unicode/utf8.Valid on every backend.
//
// Two flavors are available as subpackages:
//   - basic: fastest; reports only valid or invalid
//   - compat: same speed on valid input; on failure reports the length of
//     the valid prefix and of the invalid sequence, like a scalar decoder
//
// Basic usage:
//
//	if !simdutf8.Valid(data) {
//	    return errors.New("not utf-8")
//	}
//
//	if err := compat.Validate(data); err != nil {
//	    var e *compat.Utf8Error
//	    errors.As(err, &e)
//	    fmt.Println("bad byte at", e.ValidUpTo)
//	}
//
// The backend is chosen on first use and cached. Backend reports which one
// is active and Backends lists the alternatives. SetLogger installs a zap
// logger that receives the selection at debug level.
package simdutf8

import (
	"go.uber.org/zap"

	"github.com/coregx/simdutf8/basic"
	"github.com/coregx/simdutf8/internal/dispatch"
)

// Valid reports whether b is valid UTF-8.
func Valid(b []byte) bool {
	return basic.Valid(b)
}

// ValidString reports whether s is valid UTF-8.
func ValidString(s string) bool {
	return basic.ValidateString(s) == nil
}

// Backend returns the name of the backend used for validation, such as
// "avx2" or "scalar".
func Backend() string {
	return dispatch.Current().Backend().String()
}

// Backends returns the names of the backends the running CPU supports, most
// preferred first. Any of them can be passed to basic.ValidateWith or
// compat.ValidateWith.
func Backends() []string {
	return basic.Backends()
}

// SetLogger routes the library's diagnostic output to l. Passing nil
// silences it again, which is the default.
func SetLogger(l *zap.Logger) {
	dispatch.SetLogger(l)
}
