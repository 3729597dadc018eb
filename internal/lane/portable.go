package lane

// Portable is a 16-byte lane operated on one byte at a time.
//
// It makes no assumption about word size or unaligned loads and serves as
// the reference lane: every operation is spelled out per byte, and results
// are identical to the word-based lanes byte for byte.
type Portable [16]byte

// Width returns 16.
func (Portable) Width() int { return 16 }

// Load reads the first 16 bytes of b.
func (Portable) Load(b []byte) (r Portable) {
	copy(r[:], b[:16])
	return r
}

// Store writes v to the first 16 bytes of b.
func (v Portable) Store(b []byte) { copy(b[:16], v[:]) }

// Splat returns a lane with every byte set to c.
func (Portable) Splat(c byte) (r Portable) {
	for i := range r {
		r[i] = c
	}
	return r
}

// And returns the bytewise AND of v and o.
func (v Portable) And(o Portable) (r Portable) {
	for i := range r {
		r[i] = v[i] & o[i]
	}
	return r
}

// Or returns the bytewise OR of v and o.
func (v Portable) Or(o Portable) (r Portable) {
	for i := range r {
		r[i] = v[i] | o[i]
	}
	return r
}

// Xor returns the bytewise XOR of v and o.
func (v Portable) Xor(o Portable) (r Portable) {
	for i := range r {
		r[i] = v[i] ^ o[i]
	}
	return r
}

// SaturatingSub returns v - o per byte, clamped at zero.
func (v Portable) SaturatingSub(o Portable) (r Portable) {
	for i := range r {
		if v[i] > o[i] {
			r[i] = v[i] - o[i]
		}
	}
	return r
}

// Shr4 returns the high nibble of every byte.
func (v Portable) Shr4() (r Portable) {
	for i := range r {
		r[i] = v[i] >> 4
	}
	return r
}

// Lookup16 maps the low nibble of every byte of v through t.
func (v Portable) Lookup16(t *[16]byte) (r Portable) {
	for i := range r {
		r[i] = t[v[i]&0x0F]
	}
	return r
}

func (v Portable) prev(prev Portable, n int) (r Portable) {
	copy(r[:n], prev[16-n:])
	copy(r[n:], v[:16-n])
	return r
}

// Prev1 returns v shifted up one byte, with the last byte of prev shifted in.
func (v Portable) Prev1(prev Portable) Portable { return v.prev(prev, 1) }

// Prev2 returns v shifted up two bytes, with the last two bytes of prev shifted in.
func (v Portable) Prev2(prev Portable) Portable { return v.prev(prev, 2) }

// Prev3 returns v shifted up three bytes, with the last three bytes of prev shifted in.
func (v Portable) Prev3(prev Portable) Portable { return v.prev(prev, 3) }

// Gt returns 0xFF in every byte where v > o (unsigned) and 0 elsewhere.
func (v Portable) Gt(o Portable) (r Portable) {
	for i := range r {
		if v[i] > o[i] {
			r[i] = 0xFF
		}
	}
	return r
}

// AnyBitSet reports whether any byte of v is non-zero.
func (v Portable) AnyBitSet() bool {
	var acc byte
	for _, b := range v {
		acc |= b
	}
	return acc != 0
}

// IsASCII reports whether every byte of v is below 0x80.
func (v Portable) IsASCII() bool {
	var acc byte
	for _, b := range v {
		acc |= b
	}
	return acc < 0x80
}
