package common

import "crypto/rand"

// GenerateRandByteArray returns n cryptographically secure random bytes.
// It panics if the system random source is unavailable, which is not a
// recoverable condition for this application.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing secrets such as TOTP keys from memory after
// use. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
