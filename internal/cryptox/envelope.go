// Package cryptox implements the at-rest protection for TOTP secrets:
// an AES-256-GCM envelope and the lifecycle of the symmetric key file.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/biohash-labs/biohash/internal/common"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// Encrypt seals plaintext under key with AES-256-GCM. A fresh random
// nonce is generated for every call and prefixed to the returned blob,
// so the result is a single opaque byte string nonce||ciphertext||tag.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a blob produced by Encrypt. The authentication tag is
// verified before any plaintext is returned; a truncated or modified
// blob, or a wrong key, yields ErrorTamperOrKeyMismatch and never
// partially-decrypted bytes.
func Decrypt(blob, key []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	if len(blob) < aead.NonceSize() {
		return nil, common.ErrorTamperOrKeyMismatch
	}

	nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.ErrorTamperOrKeyMismatch
	}
	if plaintext == nil {
		// Open returns nil for empty plaintext; keep the round trip exact.
		plaintext = []byte{}
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", common.ErrorMalformedInput, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
