package dispatch

import (
	"fmt"
	"strings"
)

// Backend identifies one lane implementation of the validator.
type Backend uint8

const (
	// Scalar validates one byte at a time; available everywhere.
	Scalar Backend = iota

	// Portable uses 16-byte lanes without any CPU-specific assumption.
	// Requires a 64-bit target.
	Portable

	// NEON uses 16-byte lanes; requires ARM64 Advanced SIMD.
	NEON

	// SSE42 uses 16-byte lanes; requires x86-64 SSE4.2.
	SSE42

	// AVX2 uses 32-byte lanes; requires x86-64 AVX2.
	AVX2

	// AVX512 uses 64-byte lanes; requires x86-64 AVX-512F and AVX-512BW.
	AVX512

	numBackends
)

// preference is the probe order: widest first. Portable runs the byte-wise
// lane kernel, which is slower than the scalar decoder, so it ranks after
// Scalar and is only reached through Lookup.
var preference = [...]Backend{AVX512, AVX2, SSE42, NEON, Scalar, Portable}

var backendNames = [numBackends]string{
	Scalar:   "scalar",
	Portable: "portable",
	NEON:     "neon",
	SSE42:    "sse4.2",
	AVX2:     "avx2",
	AVX512:   "avx512",
}

// String returns the lower-case backend name.
func (b Backend) String() string {
	if b < numBackends {
		return backendNames[b]
	}
	return fmt.Sprintf("Backend(%d)", uint8(b))
}

// LaneWidth returns the vector width in bytes, or 0 for Scalar.
func (b Backend) LaneWidth() int {
	switch b {
	case Portable, NEON, SSE42:
		return 16
	case AVX2:
		return 32
	case AVX512:
		return 64
	default:
		return 0
	}
}

// Backends returns every known backend in preference order.
func Backends() []Backend {
	out := make([]Backend, len(preference))
	copy(out, preference[:])
	return out
}

// ParseBackend resolves a backend name as printed by String. Matching is
// case-insensitive and "sse42" is accepted for "sse4.2".
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "sse42" {
		return SSE42, nil
	}
	for b, n := range backendNames {
		if n == name {
			return Backend(b), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
