// Package kernel implements the UTF-8 byte-classification algorithm over
// generic lanes and the 64-byte super-chunk processor built on it.
//
// The algorithm is the "lookup" method by Keiser and Lemire
// ("Validating UTF-8 In Less Than One Instruction Per Byte", 2021). Every byte
// is classified against the byte before it with three 16-entry nibble tables
// (see tables.go); a second check verifies that the bytes two and three
// positions after a three- or four-byte leader are continuations. A lane is
// error-free when both checks produce zero.
//
// Two forms of the classifier exist. The lane kernel in this file is written
// once over lane.Vector and follows the tables literally. Words evaluates the
// same categories on uint64 words in concrete code; State picks it for the
// word-backed lanes so the hot loop makes no generic method calls.
//
// Nothing in this package branches on data except the ASCII fast path, so the
// cost per chunk is constant for non-ASCII input.
package kernel

import "github.com/coregx/simdutf8/internal/lane"

// ChunkSize is the number of bytes consumed by one CheckBlock call.
// All backends share it; 64/Width() lanes make up one super-chunk.
const ChunkSize = 64

// maxLanes is the lane count of the narrowest backend (16 bytes).
const maxLanes = ChunkSize / 16

// constants holds the splatted vectors used on every lane. They are
// materialised once per State so the hot loop never rebuilds them.
type constants[V lane.Vector[V]] struct {
	zero       V
	high       V // 0x80
	thirdByte  V // 0xE0 - 1
	fourthByte V // 0xF0 - 1
	incomplete V // per-byte maximum a tail byte may have and still be complete
}

func newConstants[V lane.Vector[V]]() constants[V] {
	var zero V
	w := zero.Width()

	// A lane's last three bytes may only end a sequence if they are below
	// 0xF0, 0xE0 and 0xC0 respectively; everything earlier is unconstrained.
	var buf [ChunkSize]byte
	maxTail := buf[:w]
	for i := range maxTail {
		maxTail[i] = 0xFF
	}
	maxTail[w-3] = 0xF0 - 1
	maxTail[w-2] = 0xE0 - 1
	maxTail[w-1] = 0xC0 - 1

	return constants[V]{
		zero:       zero,
		high:       zero.Splat(0x80),
		thirdByte:  zero.Splat(0xE0 - 1),
		fourthByte: zero.Splat(0xF0 - 1),
		incomplete: zero.Load(maxTail),
	}
}

// specialCases classifies every byte of input against the byte before it.
func specialCases[V lane.Vector[V]](input, prev1 V) V {
	b1h := prev1.Shr4().Lookup16(&byte1High)
	b1l := prev1.Lookup16(&byte1Low)
	b2h := input.Shr4().Lookup16(&byte2High)
	return b1h.And(b1l).And(b2h)
}

// multibyteLengths flags bytes whose continuation-ness disagrees with what a
// three- or four-byte leader two or three positions earlier requires.
//
// The table lookups already mark "continuation after a two-byte leader"; here
// 0x80 is set wherever a continuation is mandatory for the third or fourth byte.
// specialCases reports twoConts for every continuation that follows a
// continuation, so the xor cancels exactly the legitimate ones.
func multibyteLengths[V lane.Vector[V]](c *constants[V], input, prev, special V) V {
	prev2 := input.Prev2(prev)
	prev3 := input.Prev3(prev)
	isThird := prev2.SaturatingSub(c.thirdByte)
	isFourth := prev3.SaturatingSub(c.fourthByte)
	must23 := isThird.Or(isFourth).Gt(c.zero)
	return must23.And(c.high).Xor(special)
}

// checkLane returns the error lane for input given the previous lane.
func checkLane[V lane.Vector[V]](c *constants[V], input, prev V) V {
	prev1 := input.Prev1(prev)
	special := specialCases(input, prev1)
	return multibyteLengths(c, input, prev, special)
}

// isIncomplete is non-zero iff the lane ends inside a multi-byte sequence.
func isIncomplete[V lane.Vector[V]](c *constants[V], input V) V {
	return input.SaturatingSub(c.incomplete)
}
