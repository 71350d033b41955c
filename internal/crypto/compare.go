package crypto

// ConstantTimeCompare reports whether a and b are equal without leaking
// timing information about where a mismatch occurs.
//
// Differing lengths return false immediately; length is not a secret in
// this protocol. For equal lengths, the bitwise OR of the XOR of every byte
// pair is accumulated, so execution time depends only on the length, never
// on the position of the first difference.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
