package lane

// V256 is a 32-byte lane stored as 4 little-endian uint64 words.
// It backs the AVX2 dispatch target.
type V256 [4]uint64

// Width returns 32.
func (V256) Width() int { return 32 }

// Load reads the first 32 bytes of b.
func (V256) Load(b []byte) (r V256) {
	loadWords(r[:], b)
	return r
}

// Store writes v to the first 32 bytes of b.
func (v V256) Store(b []byte) { storeWords(b, v[:]) }

// Splat returns a lane with every byte set to c.
func (V256) Splat(c byte) (r V256) {
	splatWords(r[:], c)
	return r
}

// And returns the bytewise AND of v and o.
func (v V256) And(o V256) (r V256) {
	andWords(r[:], v[:], o[:])
	return r
}

// Or returns the bytewise OR of v and o.
func (v V256) Or(o V256) (r V256) {
	orWords(r[:], v[:], o[:])
	return r
}

// Xor returns the bytewise XOR of v and o.
func (v V256) Xor(o V256) (r V256) {
	xorWords(r[:], v[:], o[:])
	return r
}

// SaturatingSub returns v - o per byte, clamped at zero.
func (v V256) SaturatingSub(o V256) (r V256) {
	satSubWords(r[:], v[:], o[:])
	return r
}

// Shr4 returns the high nibble of every byte.
func (v V256) Shr4() (r V256) {
	shr4Words(r[:], v[:])
	return r
}

// Lookup16 maps the low nibble of every byte of v through t.
func (v V256) Lookup16(t *[16]byte) (r V256) {
	lookupWords(r[:], v[:], t)
	return r
}

// Prev1 returns v shifted up one byte, with the last byte of prev shifted in.
func (v V256) Prev1(prev V256) (r V256) {
	prevWords(r[:], v[:], prev[:], 1)
	return r
}

// Prev2 returns v shifted up two bytes, with the last two bytes of prev shifted in.
func (v V256) Prev2(prev V256) (r V256) {
	prevWords(r[:], v[:], prev[:], 2)
	return r
}

// Prev3 returns v shifted up three bytes, with the last three bytes of prev shifted in.
func (v V256) Prev3(prev V256) (r V256) {
	prevWords(r[:], v[:], prev[:], 3)
	return r
}

// Gt returns 0xFF in every byte where v > o (unsigned) and 0 elsewhere.
func (v V256) Gt(o V256) (r V256) {
	gtWords(r[:], v[:], o[:])
	return r
}

// AnyBitSet reports whether any byte of v is non-zero.
func (v V256) AnyBitSet() bool { return orAll(v[:]) != 0 }

// IsASCII reports whether every byte of v is below 0x80.
func (v V256) IsASCII() bool { return orAll(v[:])&hi8 == 0 }
