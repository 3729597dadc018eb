// Package compat validates UTF-8 and, on failure, reports exactly where the
// input went wrong.
//
// The error matches what a byte-at-a-time decoder reports: the length of
// the valid prefix and the length of the maximal invalid subpart that
// follows it. Valid input costs the same as in package basic; invalid input
// adds a short scalar rescan around the failing block.
package compat

import (
	"unsafe"

	"github.com/coregx/simdutf8/internal/conv"
	"github.com/coregx/simdutf8/internal/dispatch"
)

// Validate returns nil if input is valid UTF-8 and a *Utf8Error otherwise.
func Validate(input []byte) error {
	return check(dispatch.Current(), input)
}

// ValidateWith is Validate on a named backend, as listed by basic.Backends.
// It returns basic.ErrUnknownBackend or basic.ErrUnsupportedBackend without
// validating when the backend cannot be used.
func ValidateWith(backend string, input []byte) error {
	impl, err := dispatch.LookupName(backend)
	if err != nil {
		return err
	}
	return check(impl, input)
}

func check(impl *dispatch.Implementation, input []byte) error {
	validUpTo, errorLen := impl.Check(input)
	if validUpTo == len(input) {
		return nil
	}
	return &Utf8Error{ValidUpTo: validUpTo, ErrorLen: conv.IntToUint8(errorLen)}
}

// ValidateString is Validate for a string, without copying it.
func ValidateString(s string) error {
	return Validate(unsafe.Slice(unsafe.StringData(s), len(s)))
}
