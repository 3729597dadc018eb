// Package engine contains the validation drivers and streaming state machines.
//
// Every driver is generic over a lane type and therefore written once for all
// vector backends. Two whole-buffer flavors exist:
//
//   - Basic runs the kernel over the entire input without looking at the error
//     state in between, then reports valid/invalid. No position information is
//     kept, so valid input streams through with no data-dependent branches.
//   - Compat checks the error state after every chunk and stops at the first
//     failing chunk, then locates the exact error with the scalar decoder.
//
// Inputs shorter than one chunk go straight to the scalar decoder in both
// flavors: loading and padding a chunk costs more than decoding a few bytes.
package engine

import (
	"github.com/coregx/simdutf8/internal/kernel"
	"github.com/coregx/simdutf8/internal/lane"
	"github.com/coregx/simdutf8/internal/scalar"
)

// ChunkSize is the minimum meaningful input size for the vector drivers.
const ChunkSize = kernel.ChunkSize

// Basic reports whether input is valid UTF-8.
func Basic[V lane.Vector[V]](input []byte) bool {
	if len(input) < ChunkSize {
		return scalar.Valid(input)
	}

	var s kernel.State[V]
	s.Init()
	idx := 0
	lim := len(input) - len(input)%ChunkSize
	for idx < lim {
		s.CheckBlock(input[idx : idx+ChunkSize])
		idx += ChunkSize
	}
	if idx < len(input) {
		var tmp [ChunkSize]byte
		copy(tmp[:], input[idx:])
		s.CheckBlock(tmp[:])
	}
	s.CheckIncompletePending()
	return !s.HasError()
}

// Compat validates input and returns the exact error descriptor, with the
// same meaning as scalar.Check: input is valid iff validUpTo == len(input).
func Compat[V lane.Vector[V]](input []byte) (validUpTo, errorLen int) {
	if len(input) < ChunkSize {
		return scalar.Check(input)
	}
	failed, ok := firstFailingChunk[V](input)
	if ok {
		return len(input), 0
	}
	return Locate(input, failed)
}

// firstFailingChunk returns the offset of the chunk in which the error state
// first became non-zero. The offset of the zero-padded tail is the start of the
// partial chunk, or len(input) when only the final incomplete check fails.
func firstFailingChunk[V lane.Vector[V]](input []byte) (int, bool) {
	var s kernel.State[V]
	s.Init()
	idx := 0
	lim := len(input) - len(input)%ChunkSize

	for idx < lim {
		// Pure ASCII so far: nothing is pending, so whole chunks are skipped
		// without touching the state.
		for idx < lim && kernel.IsASCII(input[idx : idx+ChunkSize]) {
			idx += ChunkSize
		}

		// Multibyte territory: check every chunk until one is pure ASCII
		// again, which also settles any pending sequence.
		for idx < lim {
			ascii := s.CheckBlock(input[idx : idx+ChunkSize])
			if s.HasError() {
				return idx, false
			}
			idx += ChunkSize
			if ascii {
				break
			}
		}
	}

	if idx < len(input) {
		var tmp [ChunkSize]byte
		copy(tmp[:], input[idx:])
		s.CheckBlock(tmp[:])
	}
	s.CheckIncompletePending()
	if s.HasError() {
		return idx, false
	}
	return 0, true
}

// Locate turns a failing chunk offset into an exact error descriptor.
//
// Everything before the failing chunk is valid except for a sequence that
// starts in its last three bytes and continues across the boundary. Walking
// back over at most three continuation bytes finds the start of that
// sequence; if all three are continuations, the previous chunk ends with a
// complete four-byte sequence and the scan starts at the chunk itself.
func Locate(input []byte, failingChunk int) (validUpTo, errorLen int) {
	offset := failingChunk
	for i := 1; i <= 3 && i <= failingChunk; i++ {
		if !scalar.IsContinuation(input[failingChunk-i]) {
			offset = failingChunk - i
			break
		}
	}
	return scalar.CheckFrom(input, offset)
}
