package lane

import "encoding/binary"

const (
	lo8  = uint64(0x0101010101010101)
	hi8  = uint64(0x8080808080808080)
	low4 = uint64(0x0F0F0F0F0F0F0F0F)
)

// splat64 broadcasts c into every byte of a word.
// Example: c=0x42 -> 0x4242424242424242
func splat64(c byte) uint64 {
	return uint64(c) * lo8
}

// subBytes subtracts b from a byte by byte (wrapping) and reports the borrow
// out of bit 7 of every byte.
//
// Setting the high bit of every byte of a and clearing it in b guarantees that
// no byte borrows from its neighbour; the xor restores the true bit 7 of the
// difference (Hacker's Delight 2-18). The borrow term is the full-subtractor
// borrow-out evaluated at bit 7.
func subBytes(a, b uint64) (diff, borrow uint64) {
	diff = ((a | hi8) - (b &^ hi8)) ^ ((a ^ ^b) & hi8)
	borrow = ((^a & b) | (^(a ^ b) & diff)) & hi8
	return diff, borrow
}

// spread turns a word with only bit 7 of each byte set into a 0xFF/0x00 byte mask.
func spread(msb uint64) uint64 {
	return (msb >> 7) * 0xFF
}

// satSub64 is unsigned saturating byte subtraction.
func satSub64(a, b uint64) uint64 {
	diff, borrow := subBytes(a, b)
	return diff &^ spread(borrow)
}

// gt64 returns 0xFF in every byte where a > b.
func gt64(a, b uint64) uint64 {
	_, borrow := subBytes(b, a)
	return spread(borrow)
}

func shr4x64(w uint64) uint64 {
	return (w >> 4) & low4
}

// lookup64 maps the low nibble of every byte of w through t.
func lookup64(w uint64, t *[16]byte) uint64 {
	return uint64(t[w&0xF]) |
		uint64(t[(w>>8)&0xF])<<8 |
		uint64(t[(w>>16)&0xF])<<16 |
		uint64(t[(w>>24)&0xF])<<24 |
		uint64(t[(w>>32)&0xF])<<32 |
		uint64(t[(w>>40)&0xF])<<40 |
		uint64(t[(w>>48)&0xF])<<48 |
		uint64(t[(w>>56)&0xF])<<56
}

func loadWords(dst []uint64, b []byte) {
	_ = b[len(dst)*8-1]
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
}

func storeWords(b []byte, src []uint64) {
	_ = b[len(src)*8-1]
	for i, w := range src {
		binary.LittleEndian.PutUint64(b[i*8:], w)
	}
}

func splatWords(dst []uint64, c byte) {
	w := splat64(c)
	for i := range dst {
		dst[i] = w
	}
}

func andWords(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func orWords(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func xorWords(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func satSubWords(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = satSub64(a[i], b[i])
	}
}

func gtWords(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = gt64(a[i], b[i])
	}
}

func shr4Words(dst, a []uint64) {
	for i := range dst {
		dst[i] = shr4x64(a[i])
	}
}

func lookupWords(dst, a []uint64, t *[16]byte) {
	for i := range dst {
		dst[i] = lookup64(a[i], t)
	}
}

// prevWords shifts cur towards higher byte indices by n bytes (1 <= n <= 3),
// pulling the last n bytes of prev into the low bytes of the result.
func prevWords(dst, cur, prev []uint64, n uint) {
	shift := 8 * n
	carry := prev[len(prev)-1] >> (64 - shift)
	for i, w := range cur {
		dst[i] = w<<shift | carry
		carry = w >> (64 - shift)
	}
}

func orAll(w []uint64) uint64 {
	var acc uint64
	for _, x := range w {
		acc |= x
	}
	return acc
}
