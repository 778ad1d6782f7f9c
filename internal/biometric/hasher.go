package biometric

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/crypto/pbkdf2"

	"github.com/biohash-labs/biohash/internal/common"
)

const (
	// SaltSize is the required salt length in bytes.
	SaltSize = 16

	// Iterations is the PBKDF2 iteration count. Chosen high so that
	// brute-forcing stored hashes stays expensive.
	Iterations = 100_000

	// HashSize is the PBKDF2 output length in bytes.
	HashSize = 32
)

// NewSalt returns a fresh random salt. Salts are not secret and are
// stored in plaintext next to the hash.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// Hash derives a PBKDF2-HMAC-SHA256 digest of the serialized feature
// vector. The salt must be exactly SaltSize bytes; a wrong length is an
// input error, never silently accepted.
func Hash(features []float64, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", common.ErrorMalformedInput, SaltSize, len(salt))
	}
	return pbkdf2.Key(serialize(features), salt, Iterations, HashSize, sha256.New), nil
}

// Verify recomputes the hash of features under salt and compares it to
// expected in constant time.
func Verify(features []float64, salt, expected []byte) (bool, error) {
	candidate, err := Hash(features, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(candidate, expected) == 1, nil
}

// serialize encodes the vector as big-endian IEEE-754 float64 bits so
// the byte representation is identical across runs and platforms.
func serialize(features []float64) []byte {
	buf := make([]byte, 8*len(features))
	for i, f := range features {
		binary.BigEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}
