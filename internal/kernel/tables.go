package kernel

// Error categories. Each table cell is a bitmask of the categories a byte could
// still belong to; a category survives the AND of all three lookups only when
// the leader's high nibble, the leader's low nibble and the following byte's
// high nibble all agree on it.
const (
	tooShort  = 1 << 0 // 11______ followed by 0_______ or 11______
	tooLong   = 1 << 1 // 0_______ followed by 10______
	overlong3 = 1 << 2 // 11100000 100_____
	tooLarge  = 1 << 3 // 11110100 1001____ or 11110100 101_____ or 11110101.. and up
	surrogate = 1 << 4 // 11101101 101_____
	overlong2 = 1 << 5 // 1100000_ 10______

	// tooLarge1000 and overlong4 share a bit: the high nibble of the leader
	// (1111) and the second byte (1000) are the same for both, and the leader's
	// low nibble tells them apart.
	tooLarge1000 = 1 << 6 // 11110101+ 1000____
	overlong4    = 1 << 6 // 11110000 1000____

	twoConts = 1 << 7 // 10______ followed by 10______

	carry = tooShort | tooLong | twoConts
)

// byte1High is indexed by the high nibble of the previous byte.
var byte1High = [16]byte{
	// 0_______ ASCII leader
	tooLong, tooLong, tooLong, tooLong,
	tooLong, tooLong, tooLong, tooLong,
	// 10______ continuation
	twoConts, twoConts, twoConts, twoConts,
	// 1100____ two-byte leader
	tooShort | overlong2,
	// 1101____ two-byte leader
	tooShort,
	// 1110____ three-byte leader
	tooShort | overlong3 | surrogate,
	// 1111____ four-byte leader
	tooShort | tooLarge | tooLarge1000 | overlong4,
}

// byte1Low is indexed by the low nibble of the previous byte.
var byte1Low = [16]byte{
	// ____0000
	carry | overlong3 | overlong2 | overlong4,
	// ____0001
	carry | overlong2,
	// ____001_
	carry,
	carry,
	// ____0100
	carry | tooLarge,
	// ____0101
	carry | tooLarge | tooLarge1000,
	// ____011_
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	// ____1___
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	// ____1101
	carry | tooLarge | tooLarge1000 | surrogate,
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
}

// byte2High is indexed by the high nibble of the current byte.
var byte2High = [16]byte{
	// 0_______ ASCII
	tooShort, tooShort, tooShort, tooShort,
	tooShort, tooShort, tooShort, tooShort,
	// 1000____
	tooLong | overlong2 | twoConts | overlong3 | tooLarge1000 | overlong4,
	// 1001____
	tooLong | overlong2 | twoConts | overlong3 | tooLarge,
	// 101_____
	tooLong | overlong2 | twoConts | surrogate | tooLarge,
	tooLong | overlong2 | twoConts | surrogate | tooLarge,
	// 11______ leader
	tooShort, tooShort, tooShort, tooShort,
}
