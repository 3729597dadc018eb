// Package dispatch selects the fastest validator backend the running CPU
// supports and caches the choice for the lifetime of the process.
//
// The vector kernels in internal/engine take any lane type and never check the
// CPU themselves. This package is the only place that maps CPU features to
// kernels: Current probes once and caches, Lookup checks the requested
// backend before handing it out. Nothing outside internal/ can reach a kernel
// without going through one of the two.
//
// The cache is a single atomic pointer with no lock. Several goroutines may
// race through the first probe; they all compute the same Implementation
// because the probe depends only on the (fixed) CPU feature set, so the
// redundant stores are harmless.
package dispatch

import (
	"errors"
	"fmt"
	"math/bits"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/coregx/simdutf8/internal/engine"
	"github.com/coregx/simdutf8/internal/lane"
	"github.com/coregx/simdutf8/internal/scalar"
)

var (
	// ErrUnknownBackend is returned for a backend value or name that does not exist.
	ErrUnknownBackend = errors.New("unknown validation backend")

	// ErrUnsupportedBackend is returned when the CPU lacks the features a
	// backend requires.
	ErrUnsupportedBackend = errors.New("validation backend not supported by this CPU")
)

// Implementation bundles the entry points of one backend.
type Implementation struct {
	backend    Backend
	basic      func([]byte) bool
	compat     func([]byte) (int, int)
	newStream  func() engine.Streamer
	newChunked func() engine.ChunkedStreamer
}

func vectorImplementation[V lane.Vector[V]](b Backend) *Implementation {
	return &Implementation{
		backend:    b,
		basic:      engine.Basic[V],
		compat:     engine.Compat[V],
		newStream:  func() engine.Streamer { return engine.NewStream[V]() },
		newChunked: func() engine.ChunkedStreamer { return engine.NewChunked[V]() },
	}
}

var implementations = [numBackends]*Implementation{
	Scalar: {
		backend:    Scalar,
		basic:      scalar.Valid,
		compat:     scalar.Check,
		newStream:  func() engine.Streamer { return &engine.ScalarStream{} },
		newChunked: func() engine.ChunkedStreamer { return &engine.ScalarChunked{} },
	},
	Portable: vectorImplementation[lane.Portable](Portable),
	NEON:     vectorImplementation[lane.V128](NEON),
	SSE42:    vectorImplementation[lane.V128](SSE42),
	AVX2:     vectorImplementation[lane.V256](AVX2),
	AVX512:   vectorImplementation[lane.V512](AVX512),
}

// Backend reports which backend this Implementation runs.
func (impl *Implementation) Backend() Backend { return impl.backend }

// Valid reports whether b is valid UTF-8.
func (impl *Implementation) Valid(b []byte) bool { return impl.basic(b) }

// Check returns the exact error descriptor for b; b is valid iff
// validUpTo == len(b). errorLen is 0 for a truncated tail.
func (impl *Implementation) Check(b []byte) (validUpTo, errorLen int) { return impl.compat(b) }

// NewStreamer returns an empty streaming validator.
func (impl *Implementation) NewStreamer() engine.Streamer { return impl.newStream() }

// NewChunkedStreamer returns an empty chunk-aligned streaming validator.
func (impl *Implementation) NewChunkedStreamer() engine.ChunkedStreamer { return impl.newChunked() }

// Supported reports whether the running CPU can execute backend b.
func Supported(b Backend) bool {
	switch b {
	case Scalar:
		return true
	case Portable:
		return bits.UintSize == 64
	case NEON, SSE42, AVX2, AVX512:
		return cpuSupports(b)
	default:
		return false
	}
}

var selected atomic.Pointer[Implementation]

// Current returns the preferred Implementation for this CPU, probing on the
// first call only.
func Current() *Implementation {
	if impl := selected.Load(); impl != nil {
		return impl
	}
	impl := detect()
	selected.Store(impl)
	return impl
}

func detect() *Implementation {
	for _, b := range preference {
		if Supported(b) {
			Logger().Debug("utf-8 validation backend selected",
				zap.Stringer("backend", b),
				zap.Int("lane_width", b.LaneWidth()),
			)
			return implementations[b]
		}
	}
	return implementations[Scalar]
}

// Lookup returns the Implementation for b after checking that the CPU
// supports it.
func Lookup(b Backend) (*Implementation, error) {
	if b >= numBackends {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, b)
	}
	if !Supported(b) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, b)
	}
	return implementations[b], nil
}

// LookupName is Lookup for a backend name as accepted by ParseBackend.
func LookupName(name string) (*Implementation, error) {
	b, err := ParseBackend(name)
	if err != nil {
		return nil, err
	}
	return Lookup(b)
}

// SupportedBackends returns the backends this CPU can run, in preference
// order.
func SupportedBackends() []Backend {
	var out []Backend
	for _, b := range preference {
		if Supported(b) {
			out = append(out, b)
		}
	}
	return out
}
