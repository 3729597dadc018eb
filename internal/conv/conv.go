// Package conv provides checked integer conversions.
//
// Conversions panic on overflow: a value out of range here means an internal
// invariant was broken (for example an error length longer than a UTF-8
// sequence), not that the input was bad.
package conv

import "math"

// IntToUint8 converts n to uint8.
// Panics if n < 0 or n > math.MaxUint8.
//
//go:inline
func IntToUint8(n int) uint8 {
	if n < 0 || n > math.MaxUint8 {
		panic("integer overflow: int value out of uint8 range")
	}
	return uint8(n)
}
