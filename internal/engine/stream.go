package engine

import (
	"fmt"

	"github.com/coregx/simdutf8/internal/kernel"
	"github.com/coregx/simdutf8/internal/lane"
)

// Streamer validates input delivered in arbitrary increments.
// No result is observable before Finalize.
type Streamer interface {
	Update(input []byte)
	Finalize() bool
	Reset()
}

// ChunkedStreamer validates input delivered in whole 64-byte chunks, with an
// unconstrained remainder passed to Finalize.
type ChunkedStreamer interface {
	// UpdateFromChunks panics unless len(input) is a multiple of ChunkSize.
	UpdateFromChunks(input []byte)
	// Finalize accepts a nil or empty remainder.
	Finalize(remaining []byte) bool
	Reset()
}

func checkAligned(input []byte) {
	if len(input)%ChunkSize != 0 {
		panic(fmt.Sprintf("simdutf8: UpdateFromChunks called with %d bytes, not a multiple of %d",
			len(input), ChunkSize))
	}
}

// Stream buffers up to one chunk of leftover bytes between Update calls so the
// kernel always sees full 64-byte chunks.
type Stream[V lane.Vector[V]] struct {
	state      *kernel.State[V]
	pending    [ChunkSize]byte
	pendingLen int
}

// NewStream returns an empty Stream.
func NewStream[V lane.Vector[V]]() *Stream[V] {
	return &Stream[V]{state: kernel.NewState[V]()}
}

// Update feeds input to the validator.
func (s *Stream[V]) Update(input []byte) {
	if len(input) == 0 {
		return
	}
	if s.pendingLen > 0 {
		n := copy(s.pending[s.pendingLen:], input)
		if s.pendingLen+n < ChunkSize {
			s.pendingLen += n
			return
		}
		s.state.CheckBlock(s.pending[:])
		s.pendingLen = 0
		input = input[n:]
	}
	for len(input) >= ChunkSize {
		s.state.CheckBlock(input[:ChunkSize])
		input = input[ChunkSize:]
	}
	s.pendingLen = copy(s.pending[:], input)
}

// Finalize flushes the pending bytes, zero-padded, and reports validity.
func (s *Stream[V]) Finalize() bool {
	if s.pendingLen > 0 {
		clear(s.pending[s.pendingLen:])
		s.state.CheckBlock(s.pending[:])
		s.pendingLen = 0
	}
	s.state.CheckIncompletePending()
	return !s.state.HasError()
}

// Reset prepares the Stream for a new input.
func (s *Stream[V]) Reset() {
	s.state.Reset()
	s.pendingLen = 0
}

// Chunked is the buffer-free streaming validator: callers guarantee whole
// chunks, so no leftover bytes are ever copied.
type Chunked[V lane.Vector[V]] struct {
	state *kernel.State[V]
}

// NewChunked returns an empty Chunked validator.
func NewChunked[V lane.Vector[V]]() *Chunked[V] {
	return &Chunked[V]{state: kernel.NewState[V]()}
}

// UpdateFromChunks feeds whole chunks. It panics if len(input) is not a
// multiple of ChunkSize.
func (c *Chunked[V]) UpdateFromChunks(input []byte) {
	checkAligned(input)
	for len(input) > 0 {
		c.state.CheckBlock(input[:ChunkSize])
		input = input[ChunkSize:]
	}
}

// Finalize validates the remainder, which may have any length, and reports
// validity of everything fed so far.
func (c *Chunked[V]) Finalize(remaining []byte) bool {
	if len(remaining) > 0 {
		lim := len(remaining) - len(remaining)%ChunkSize
		if lim > 0 {
			c.UpdateFromChunks(remaining[:lim])
		}
		if lim < len(remaining) {
			var tmp [ChunkSize]byte
			copy(tmp[:], remaining[lim:])
			c.state.CheckBlock(tmp[:])
		}
	}
	c.state.CheckIncompletePending()
	return !c.state.HasError()
}

// Reset prepares the validator for a new input.
func (c *Chunked[V]) Reset() {
	c.state.Reset()
}
