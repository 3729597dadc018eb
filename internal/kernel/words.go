package kernel

import "encoding/binary"

const (
	lo8 = uint64(0x0101010101010101)
	lo7 = uint64(0x7F7F7F7F7F7F7F7F)
	hi8 = uint64(0x8080808080808080)
)

// Words is the word-sliced form of the classifier, used for every lane stored
// as uint64 words. It reads a chunk as eight little-endian words and derives
// the error categories of the nibble tables with bytewise word arithmetic:
//
//   - tooShort, tooLong, twoConts and the must-be-continuation check collapse
//     into one comparison: a byte is a continuation exactly when the byte one
//     back is a leader, two back a three- or four-byte leader, or three back a
//     four-byte leader.
//   - overlong2 and the leaders from 0xF5 up are never valid and are flagged
//     where they occur.
//   - overlong3, surrogate, overlong4 and tooLarge depend on the leader
//     (E0, ED, F0, F4) and bits 5 and 4 of the byte after it.
//
// The result per chunk equals that of the lane kernel; only the byte that
// carries an error bit may differ, and it is never later than the one the
// tables flag. The zero value is ready to use.
type Words struct {
	prev       uint64
	incomplete uint64
	err        uint64
}

// geHigh flags (bit 7) every byte of x that is >= 0x80|k, k <= 0x7F.
// Setting bit 7 of x before subtracting keeps borrows inside each byte.
func geHigh(x uint64, k byte) uint64 {
	return x & ((x | hi8) - uint64(k)*lo8) & hi8
}

// eqByte flags (bit 7) every byte of x equal to c.
func eqByte(x uint64, c byte) uint64 {
	y := x ^ uint64(c)*lo8
	return ^(((y & lo7) + lo7) | y) & hi8
}

// mustContinue flags the bytes of cur that a leader in the preceding three
// bytes (cur's own or prev's) requires to be continuation bytes.
func mustContinue(cur, prev uint64) uint64 {
	p1 := cur<<8 | prev>>56
	p2 := cur<<16 | prev>>48
	p3 := cur<<24 | prev>>40
	return geHigh(p1, 0x40) | geHigh(p2, 0x60) | geHigh(p3, 0x70)
}

// wordErrors returns a non-zero word iff cur, read after prev, contains an
// invalid byte or breaks a sequence started in prev.
func wordErrors(cur, prev uint64) uint64 {
	geC0 := geHigh(cur, 0x40)
	isCont := cur & hi8 &^ geC0
	e := isCont ^ mustContinue(cur, prev)

	// C0, C1 and F5..FF.
	e |= geC0 &^ geHigh(cur, 0x42)
	e |= geHigh(cur, 0x75)

	// Second-byte ranges of E0, ED, F0 and F4. Only continuation bytes
	// matter here; anything else is already flagged above.
	p1 := cur<<8 | prev>>56
	bit5 := (cur << 2) & hi8
	bit54 := bit5 | (cur<<3)&hi8
	e |= eqByte(p1, 0xE0) &^ bit5
	e |= eqByte(p1, 0xED) & bit5
	e |= eqByte(p1, 0xF0) &^ bit54
	e |= eqByte(p1, 0xF4) & bit54
	return e
}

// IsASCII reports whether every byte of the 64-byte chunk is below 0x80.
func IsASCII(chunk []byte) bool {
	chunk = chunk[:ChunkSize]
	var acc uint64
	for i := 0; i < ChunkSize; i += 8 {
		acc |= binary.LittleEndian.Uint64(chunk[i:])
	}
	return acc&hi8 == 0
}

// CheckBlock classifies one 64-byte chunk and reports whether it was pure
// ASCII.
func (w *Words) CheckBlock(chunk []byte) (ascii bool) {
	chunk = chunk[:ChunkSize]
	var v [ChunkSize / 8]uint64
	var acc uint64
	for i := range v {
		v[i] = binary.LittleEndian.Uint64(chunk[8*i:])
		acc |= v[i]
	}
	if acc&hi8 == 0 {
		w.err |= w.incomplete
		w.incomplete = 0
		w.prev = v[len(v)-1]
		return true
	}

	prev := w.prev
	var e uint64
	for _, cur := range v {
		e |= wordErrors(cur, prev)
		prev = cur
	}
	w.err |= e
	w.prev = prev
	w.incomplete = mustContinue(0, prev)
	return false
}

// CheckIncompletePending folds a pending incomplete sequence into the error
// state.
func (w *Words) CheckIncompletePending() {
	w.err |= w.incomplete
}

// HasError reports whether any error has been recorded.
func (w *Words) HasError() bool {
	return w.err != 0
}

// Reset clears the state for a new input.
func (w *Words) Reset() {
	*w = Words{}
}
