// Package scalar is the byte-at-a-time reference UTF-8 validator.
//
// It defines the ground truth for every other backend: the SIMD drivers fall
// back to it for inputs shorter than one 64-byte chunk, on targets without a
// vector backend, and to turn a coarse "chunk N failed" result into an exact
// error descriptor.
//
// Error descriptors follow the "maximal subpart" convention of Unicode
// section 3.9, which the WHATWG decoder also uses:
//   - validUpTo is the length of the longest valid prefix.
//   - errorLen is the number of bytes (1-3) that form the malformed sequence
//     starting at validUpTo, i.e. the longest prefix of a well-formed sequence
//     that is present before the offending byte, or 1 if the first byte can
//     never start a sequence.
//   - errorLen is 0 when the input ends in the middle of a sequence that is
//     still a valid prefix; more input could complete it.
package scalar

// Lead byte classification: expected sequence length, 0 for bytes that can
// never begin a sequence (continuations, 0xC0, 0xC1, 0xF5-0xFF).
func seqLen(c byte) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0xC2:
		return 0
	case c < 0xE0:
		return 2
	case c < 0xF0:
		return 3
	case c < 0xF5:
		return 4
	default:
		return 0
	}
}

// SeqLen returns the total length of the sequence introduced by lead byte c,
// or 0 if c cannot start a sequence.
func SeqLen(c byte) int {
	return seqLen(c)
}

// IsContinuation reports whether c has the form 10xxxxxx.
func IsContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

// secondByteOK applies the lead-specific range for the first continuation
// byte, which is where overlong, surrogate and too-large encodings show up.
func secondByteOK(lead, c byte) bool {
	switch lead {
	case 0xE0:
		return c >= 0xA0 && c <= 0xBF
	case 0xED:
		return c >= 0x80 && c <= 0x9F
	case 0xF0:
		return c >= 0x90 && c <= 0xBF
	case 0xF4:
		return c >= 0x80 && c <= 0x8F
	default:
		return IsContinuation(c)
	}
}

// Check validates b and returns the error descriptor described in the package
// documentation. b is valid UTF-8 exactly when validUpTo == len(b).
func Check(b []byte) (validUpTo, errorLen int) {
	n := len(b)
	i := 0
	for i < n {
		if b[i] < 0x80 {
			i += asciiPrefixLen(b[i:])
			continue
		}

		lead := b[i]
		size := seqLen(lead)
		if size == 0 {
			return i, 1
		}

		// Continuation bytes are checked one at a time so the reported length
		// is the valid prefix of the sequence, not its nominal size.
		for k := 1; k < size; k++ {
			if i+k >= n {
				return i, 0
			}
			c := b[i+k]
			ok := IsContinuation(c)
			if k == 1 {
				ok = secondByteOK(lead, c)
			}
			if !ok {
				return i, k
			}
		}
		i += size
	}
	return n, 0
}

// CheckFrom validates b[offset:] and reports positions relative to b.
func CheckFrom(b []byte, offset int) (validUpTo, errorLen int) {
	validUpTo, errorLen = Check(b[offset:])
	return validUpTo + offset, errorLen
}

// Valid reports whether b is entirely valid UTF-8.
func Valid(b []byte) bool {
	validUpTo, _ := Check(b)
	return validUpTo == len(b)
}
