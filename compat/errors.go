package compat

import (
	"fmt"

	"github.com/coregx/simdutf8/basic"
)

// Utf8Error describes where validation failed.
//
// ValidUpTo is the length of the longest valid prefix of the input.
// ErrorLen is the length of the invalid sequence that starts at ValidUpTo, or
// zero when the input ends in the middle of an otherwise valid sequence. In
// the latter case more input could have completed it.
type Utf8Error struct {
	ValidUpTo int
	ErrorLen  uint8
}

// Error implements the error interface.
func (e *Utf8Error) Error() string {
	if e.ErrorLen == 0 {
		return fmt.Sprintf("incomplete utf-8 byte sequence from index %d", e.ValidUpTo)
	}
	return fmt.Sprintf("invalid utf-8 sequence of %d bytes from index %d", e.ErrorLen, e.ValidUpTo)
}

// Incomplete reports whether the input ended inside a sequence.
func (e *Utf8Error) Incomplete() bool {
	return e.ErrorLen == 0
}

// ErrorLength returns the invalid sequence length and true, or 0 and false
// for an incomplete tail.
func (e *Utf8Error) ErrorLength() (int, bool) {
	if e.ErrorLen == 0 {
		return 0, false
	}
	return int(e.ErrorLen), true
}

// Is makes every Utf8Error match basic.ErrInvalid.
func (e *Utf8Error) Is(target error) bool {
	return target == basic.ErrInvalid
}
