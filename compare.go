package auth

import "crypto/subtle"

// Equal reports whether a and b are equal.
// The comparison runs in time that depends only on the lengths of a and b,
// not on where they differ.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ZeroBytes overwrites b with zeros.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
