package scalar

import "encoding/binary"

// asciiPrefixLen returns the length of the leading run of ASCII bytes in b.
//
// The scan uses SWAR (SIMD Within A Register): eight bytes are loaded as one
// little-endian uint64 and tested against 0x8080808080808080, so a whole word
// of ASCII costs a single AND. Once a word with a high bit is found, the
// remaining bytes of that word are checked individually to locate it.
func asciiPrefixLen(b []byte) int {
	const hi8 = uint64(0x8080808080808080)

	idx := 0
	for idx+8 <= len(b) {
		if binary.LittleEndian.Uint64(b[idx:])&hi8 != 0 {
			break
		}
		idx += 8
	}
	for idx < len(b) && b[idx] < 0x80 {
		idx++
	}
	return idx
}
