// Package basic validates UTF-8 as fast as the running CPU allows.
//
// The functions in this package report only whether input is valid. On
// failure they return ErrInvalid without position information; the compat
// package returns the same answer together with the exact error location,
// at a small cost on invalid input.
//
// Validate and ValidateString work on complete inputs. Validator and
// ChunkedValidator accept input in pieces and report once at Finalize:
//
//	v := basic.NewValidator()
//	for _, part := range parts {
//		v.Update(part)
//	}
//	if err := v.Finalize(); err != nil {
//		// invalid
//	}
package basic

import (
	"unsafe"

	"github.com/coregx/simdutf8/internal/dispatch"
	"github.com/coregx/simdutf8/internal/engine"
)

// ChunkSize is the block size of the vector kernels. ChunkedValidator
// requires UpdateFromChunks input to be a multiple of it.
const ChunkSize = engine.ChunkSize

// Validate returns nil if input is valid UTF-8 and ErrInvalid otherwise.
func Validate(input []byte) error {
	if dispatch.Current().Valid(input) {
		return nil
	}
	return ErrInvalid
}

// ValidateString is Validate for a string, without copying it.
func ValidateString(s string) error {
	return Validate(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Valid reports whether input is valid UTF-8.
func Valid(input []byte) bool {
	return dispatch.Current().Valid(input)
}
