package lane

// V128 is a 16-byte lane stored as 2 little-endian uint64 words.
// It backs the SSE4.2 and NEON dispatch target.
type V128 [2]uint64

// Width returns 16.
func (V128) Width() int { return 16 }

// Load reads the first 16 bytes of b.
func (V128) Load(b []byte) (r V128) {
	loadWords(r[:], b)
	return r
}

// Store writes v to the first 16 bytes of b.
func (v V128) Store(b []byte) { storeWords(b, v[:]) }

// Splat returns a lane with every byte set to c.
func (V128) Splat(c byte) (r V128) {
	splatWords(r[:], c)
	return r
}

// And returns the bytewise AND of v and o.
func (v V128) And(o V128) (r V128) {
	andWords(r[:], v[:], o[:])
	return r
}

// Or returns the bytewise OR of v and o.
func (v V128) Or(o V128) (r V128) {
	orWords(r[:], v[:], o[:])
	return r
}

// Xor returns the bytewise XOR of v and o.
func (v V128) Xor(o V128) (r V128) {
	xorWords(r[:], v[:], o[:])
	return r
}

// SaturatingSub returns v - o per byte, clamped at zero.
func (v V128) SaturatingSub(o V128) (r V128) {
	satSubWords(r[:], v[:], o[:])
	return r
}

// Shr4 returns the high nibble of every byte.
func (v V128) Shr4() (r V128) {
	shr4Words(r[:], v[:])
	return r
}

// Lookup16 maps the low nibble of every byte of v through t.
func (v V128) Lookup16(t *[16]byte) (r V128) {
	lookupWords(r[:], v[:], t)
	return r
}

// Prev1 returns v shifted up one byte, with the last byte of prev shifted in.
func (v V128) Prev1(prev V128) (r V128) {
	prevWords(r[:], v[:], prev[:], 1)
	return r
}

// Prev2 returns v shifted up two bytes, with the last two bytes of prev shifted in.
func (v V128) Prev2(prev V128) (r V128) {
	prevWords(r[:], v[:], prev[:], 2)
	return r
}

// Prev3 returns v shifted up three bytes, with the last three bytes of prev shifted in.
func (v V128) Prev3(prev V128) (r V128) {
	prevWords(r[:], v[:], prev[:], 3)
	return r
}

// Gt returns 0xFF in every byte where v > o (unsigned) and 0 elsewhere.
func (v V128) Gt(o V128) (r V128) {
	gtWords(r[:], v[:], o[:])
	return r
}

// AnyBitSet reports whether any byte of v is non-zero.
func (v V128) AnyBitSet() bool { return orAll(v[:]) != 0 }

// IsASCII reports whether every byte of v is below 0x80.
func (v V128) IsASCII() bool { return orAll(v[:])&hi8 == 0 }
