package kernel

import "github.com/coregx/simdutf8/internal/lane"

// State is the rolling validation state carried from one super-chunk to the
// next.
//
// err accumulates every error bit ever observed and is only ever OR'd into;
// once any bit is set the input is invalid regardless of what follows.
// incomplete is non-zero when the last processed lane ended inside a
// multi-byte sequence; it turns into an error if the next chunk is pure ASCII
// or if the input ends (see CheckIncompletePending).
//
// Lanes stored as uint64 words (V128, V256, V512) run the word-sliced
// classifier in Words, which needs no per-operation lane calls. Other lanes
// run the generic lane kernel.
//
// The zero State must be initialised with Init. A State is not safe for
// concurrent use.
type State[V lane.Vector[V]] struct {
	words      Words
	wordSliced bool

	prev       V
	incomplete V
	err        V
	c          constants[V]
}

// NewState returns a State positioned at the start of input.
func NewState[V lane.Vector[V]]() *State[V] {
	s := &State[V]{}
	s.Init()
	return s
}

// Init prepares s for use. It allows a State to live on the stack.
func (s *State[V]) Init() {
	s.initWith(wordSliced[V]())
}

func (s *State[V]) initWith(words bool) {
	s.wordSliced = words
	if !words {
		s.c = newConstants[V]()
	}
	s.Reset()
}

// wordSliced reports whether V is one of the word-backed lanes.
func wordSliced[V lane.Vector[V]]() bool {
	switch any((*V)(nil)).(type) {
	case *lane.V128, *lane.V256, *lane.V512:
		return true
	default:
		return false
	}
}

// Reset clears the state for a new input without recomputing constants.
func (s *State[V]) Reset() {
	var zero V
	s.words.Reset()
	s.prev = zero
	s.incomplete = zero
	s.err = zero
}

// superChunk is one 64-byte step split into 64/Width() lanes.
type superChunk[V lane.Vector[V]] struct {
	lanes [maxLanes]V
	n     int
}

func loadSuperChunk[V lane.Vector[V]](chunk []byte) superChunk[V] {
	var sc superChunk[V]
	var zero V
	w := zero.Width()
	sc.n = ChunkSize / w
	for i := 0; i < sc.n; i++ {
		sc.lanes[i] = zero.Load(chunk[i*w:])
	}
	return sc
}

func (sc *superChunk[V]) last() V {
	return sc.lanes[sc.n-1]
}

// CheckBlock classifies one 64-byte chunk and reports whether it was pure
// ASCII. chunk must hold at least ChunkSize bytes; callers pad a trailing
// partial chunk with zeros.
func (s *State[V]) CheckBlock(chunk []byte) (ascii bool) {
	if s.wordSliced {
		return s.words.CheckBlock(chunk)
	}
	if IsASCII(chunk) {
		// ASCII cannot complete a pending sequence.
		s.CheckIncompletePending()
		var zero V
		s.prev = zero.Load(chunk[ChunkSize-zero.Width() : ChunkSize])
		s.incomplete = s.c.zero
		return true
	}
	sc := loadSuperChunk[V](chunk[:ChunkSize])
	for i := 0; i < sc.n; i++ {
		cur := sc.lanes[i]
		s.err = s.err.Or(checkLane(&s.c, cur, s.prev))
		s.prev = cur
	}
	s.incomplete = isIncomplete(&s.c, sc.last())
	return false
}

// CheckIncompletePending folds a pending incomplete sequence into the error
// state. Drivers call it once after the last chunk.
func (s *State[V]) CheckIncompletePending() {
	if s.wordSliced {
		s.words.CheckIncompletePending()
		return
	}
	s.err = s.err.Or(s.incomplete)
}

// HasError reports whether any error bit has been recorded.
func (s *State[V]) HasError() bool {
	if s.wordSliced {
		return s.words.HasError()
	}
	return s.err.AnyBitSet()
}
