package lane

// V512 is a 64-byte lane stored as 8 little-endian uint64 words.
// It backs the AVX-512 dispatch target. One V512 spans a whole 64-byte
// super-chunk, so Prev1..Prev3 always pull from the previous chunk.
type V512 [8]uint64

// Width returns 64.
func (V512) Width() int { return 64 }

// Load reads the first 64 bytes of b.
func (V512) Load(b []byte) (r V512) {
	loadWords(r[:], b)
	return r
}

// Store writes v to the first 64 bytes of b.
func (v V512) Store(b []byte) { storeWords(b, v[:]) }

// Splat returns a lane with every byte set to c.
func (V512) Splat(c byte) (r V512) {
	splatWords(r[:], c)
	return r
}

// And returns the bytewise AND of v and o.
func (v V512) And(o V512) (r V512) {
	andWords(r[:], v[:], o[:])
	return r
}

// Or returns the bytewise OR of v and o.
func (v V512) Or(o V512) (r V512) {
	orWords(r[:], v[:], o[:])
	return r
}

// Xor returns the bytewise XOR of v and o.
func (v V512) Xor(o V512) (r V512) {
	xorWords(r[:], v[:], o[:])
	return r
}

// SaturatingSub returns v - o per byte, clamped at zero.
func (v V512) SaturatingSub(o V512) (r V512) {
	satSubWords(r[:], v[:], o[:])
	return r
}

// Shr4 returns the high nibble of every byte.
func (v V512) Shr4() (r V512) {
	shr4Words(r[:], v[:])
	return r
}

// Lookup16 maps the low nibble of every byte of v through t.
func (v V512) Lookup16(t *[16]byte) (r V512) {
	lookupWords(r[:], v[:], t)
	return r
}

// Prev1 returns v shifted up one byte, with the last byte of prev shifted in.
func (v V512) Prev1(prev V512) (r V512) {
	prevWords(r[:], v[:], prev[:], 1)
	return r
}

// Prev2 returns v shifted up two bytes, with the last two bytes of prev shifted in.
func (v V512) Prev2(prev V512) (r V512) {
	prevWords(r[:], v[:], prev[:], 2)
	return r
}

// Prev3 returns v shifted up three bytes, with the last three bytes of prev shifted in.
func (v V512) Prev3(prev V512) (r V512) {
	prevWords(r[:], v[:], prev[:], 3)
	return r
}

// Gt returns 0xFF in every byte where v > o (unsigned) and 0 elsewhere.
func (v V512) Gt(o V512) (r V512) {
	gtWords(r[:], v[:], o[:])
	return r
}

// AnyBitSet reports whether any byte of v is non-zero.
func (v V512) AnyBitSet() bool { return orAll(v[:]) != 0 }

// IsASCII reports whether every byte of v is below 0x80.
func (v V512) IsASCII() bool { return orAll(v[:])&hi8 == 0 }
