package engine

import "github.com/coregx/simdutf8/internal/scalar"

// ScalarStream is the Streamer used on targets without a vector backend.
// It carries at most three bytes of an unfinished sequence between updates.
type ScalarStream struct {
	carry    [3]byte
	carryLen int
	failed   bool
}

// Update feeds input to the validator.
func (s *ScalarStream) Update(input []byte) {
	if s.failed || len(input) == 0 {
		return
	}

	if s.carryLen > 0 {
		var seq [4]byte
		n := copy(seq[:], s.carry[:s.carryLen])
		take := min(scalar.SeqLen(seq[0])-n, len(input))
		copy(seq[n:], input[:take])

		validUpTo, errorLen := scalar.Check(seq[:n+take])
		switch {
		case errorLen > 0:
			s.failed = true
			return
		case validUpTo < n+take:
			// Still short; input is exhausted.
			s.carryLen = copy(s.carry[:], seq[:n+take])
			return
		}
		s.carryLen = 0
		input = input[take:]
	}

	validUpTo, errorLen := scalar.Check(input)
	switch {
	case errorLen > 0:
		s.failed = true
	case validUpTo < len(input):
		s.carryLen = copy(s.carry[:], input[validUpTo:])
	}
}

// Finalize reports validity. An unfinished sequence at the end is invalid.
func (s *ScalarStream) Finalize() bool {
	ok := !s.failed && s.carryLen == 0
	s.carryLen = 0
	return ok
}

// Reset prepares the validator for a new input.
func (s *ScalarStream) Reset() {
	*s = ScalarStream{}
}

// ScalarChunked is the ChunkedStreamer used on targets without a vector backend.
type ScalarChunked struct {
	stream ScalarStream
}

// UpdateFromChunks panics if len(input) is not a multiple of ChunkSize, like
// the vector implementation, so callers see the same contract everywhere.
func (c *ScalarChunked) UpdateFromChunks(input []byte) {
	checkAligned(input)
	c.stream.Update(input)
}

// Finalize validates the remainder and reports validity.
func (c *ScalarChunked) Finalize(remaining []byte) bool {
	c.stream.Update(remaining)
	return c.stream.Finalize()
}

// Reset prepares the validator for a new input.
func (c *ScalarChunked) Reset() {
	c.stream.Reset()
}
