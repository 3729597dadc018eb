// Package lane provides the fixed-width byte vectors the UTF-8 kernel runs on.
//
// A lane is an immutable value holding 16, 32 or 64 unsigned bytes. Every lane
// type implements the same minimal operation set (see Vector), so the kernel
// and the validation drivers are written once as generic code and instantiated
// per backend:
//
//	V128     - 16 bytes as two uint64 words (SSE4.2 / NEON class backends)
//	V256     - 32 bytes as four uint64 words (AVX2 class backend)
//	V512     - 64 bytes as eight uint64 words (AVX-512 class backend)
//	Portable - 16 bytes operated on one byte at a time
//
// The word-based lanes use SWAR (SIMD Within A Register) arithmetic: each
// operation treats a uint64 as eight independent byte lanes and never lets a
// carry or borrow cross a byte boundary. Byte i of a lane always lives in word
// i/8 at bit offset 8*(i%8), independent of host endianness.
package lane

// Vector is the operation set a lane backend must provide.
//
// The methods that construct a vector (Load, Splat) are called on the zero
// value and ignore the receiver. All other methods are pure: they return a new
// vector and never modify the receiver.
type Vector[V any] interface {
	// Width returns the lane width in bytes (16, 32 or 64).
	Width() int

	// Load reads Width() bytes from b. b must hold at least Width() bytes.
	Load(b []byte) V

	// Store writes the lane into b. b must hold at least Width() bytes.
	Store(b []byte)

	// Splat returns a vector with every byte set to c.
	Splat(c byte) V

	And(o V) V
	Or(o V) V
	Xor(o V) V

	// SaturatingSub returns max(v[i]-o[i], 0) for every byte.
	SaturatingSub(o V) V

	// Shr4 shifts every byte right by four bits (logical).
	Shr4() V

	// Lookup16 replaces every byte with t[byte & 0x0F].
	Lookup16(t *[16]byte) V

	// Prev1, Prev2 and Prev3 return the lane shifted towards higher indices by
	// one, two or three bytes, with the vacated low bytes filled from the last
	// bytes of prev.
	Prev1(prev V) V
	Prev2(prev V) V
	Prev3(prev V) V

	// Gt returns 0xFF for every byte where v[i] > o[i] (unsigned), 0x00 otherwise.
	Gt(o V) V

	// AnyBitSet reports whether any bit of the lane is set.
	AnyBitSet() bool

	// IsASCII reports whether every byte is below 0x80.
	IsASCII() bool
}
