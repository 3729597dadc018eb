package basic

import (
	"github.com/coregx/simdutf8/internal/dispatch"
	"github.com/coregx/simdutf8/internal/engine"
)

// Validator checks UTF-8 delivered in arbitrary pieces. Sequences may be
// split anywhere between Update calls. The result is only available from
// Finalize.
//
// The zero value is ready to use and runs on the backend Current selects.
// A Validator is not safe for concurrent use. After Finalize it must be Reset
// before it is used again; any other call panics.
type Validator struct {
	stream    engine.Streamer
	finalized bool
}

// NewValidator returns an empty Validator backed by the fastest available
// implementation.
func NewValidator() *Validator {
	return &Validator{stream: dispatch.Current().NewStreamer()}
}

// Update feeds the next piece of input.
func (v *Validator) Update(input []byte) {
	v.mustBeOpen("Update")
	v.stream.Update(input)
}

// Write implements io.Writer so a Validator can sit at the end of io.Copy.
// It never returns an error.
func (v *Validator) Write(p []byte) (int, error) {
	v.Update(p)
	return len(p), nil
}

// Finalize reports whether everything passed to Update forms valid UTF-8.
// A sequence left incomplete at the end is an error.
func (v *Validator) Finalize() error {
	v.mustBeOpen("Finalize")
	v.finalized = true
	if v.stream.Finalize() {
		return nil
	}
	return ErrInvalid
}

// Reset returns v to its initial empty state.
func (v *Validator) Reset() {
	if v.stream == nil {
		return
	}
	v.stream.Reset()
	v.finalized = false
}

func (v *Validator) mustBeOpen(op string) {
	if v.finalized {
		panic("basic: Validator." + op + " called after Finalize")
	}
	if v.stream == nil {
		v.stream = dispatch.Current().NewStreamer()
	}
}

// ChunkedValidator is a Validator for callers that already hold input in
// blocks of ChunkSize bytes. It skips the internal buffering Validator needs.
// Like Validator, its zero value is ready to use.
type ChunkedValidator struct {
	stream    engine.ChunkedStreamer
	finalized bool
}

// NewChunkedValidator returns an empty ChunkedValidator.
func NewChunkedValidator() *ChunkedValidator {
	return &ChunkedValidator{stream: dispatch.Current().NewChunkedStreamer()}
}

// UpdateFromChunks feeds input, which must be a multiple of ChunkSize bytes
// long. It panics otherwise.
func (v *ChunkedValidator) UpdateFromChunks(input []byte) {
	v.mustBeOpen("UpdateFromChunks")
	v.stream.UpdateFromChunks(input)
}

// Finalize validates the final remaining bytes, which may have any length
// including zero, and reports the result for the whole input.
func (v *ChunkedValidator) Finalize(remaining []byte) error {
	v.mustBeOpen("Finalize")
	v.finalized = true
	if v.stream.Finalize(remaining) {
		return nil
	}
	return ErrInvalid
}

// Reset returns v to its initial empty state.
func (v *ChunkedValidator) Reset() {
	if v.stream == nil {
		return
	}
	v.stream.Reset()
	v.finalized = false
}

func (v *ChunkedValidator) mustBeOpen(op string) {
	if v.finalized {
		panic("basic: ChunkedValidator." + op + " called after Finalize")
	}
	if v.stream == nil {
		v.stream = dispatch.Current().NewChunkedStreamer()
	}
}
