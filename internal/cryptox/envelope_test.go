package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biohash-labs/biohash/internal/common"
)

func testKey() []byte {
	return common.GenerateRandByteArray(KeySize)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey()

	for _, plaintext := range [][]byte{
		[]byte("secret"),
		[]byte(""),
		common.GenerateRandByteArray(1024),
	} {
		blob, err := Encrypt(plaintext, key)
		require.NoError(t, err)

		got, err := Decrypt(blob, key)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	key := testKey()
	plaintext := []byte("same plaintext")

	b1, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	b2, err := Encrypt(plaintext, key)
	require.NoError(t, err)

	assert.NotEqual(t, b1, b2)
}

func TestDecrypt_TamperedBlobFails(t *testing.T) {
	key := testKey()

	blob, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	for i := range blob {
		tampered := append([]byte(nil), blob...)
		tampered[i] ^= 0x01

		_, err := Decrypt(tampered, key)
		assert.ErrorIs(t, err, common.ErrorTamperOrKeyMismatch, "flipped byte %d", i)
	}
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	blob, err := Encrypt([]byte("secret"), testKey())
	require.NoError(t, err)

	_, err = Decrypt(blob, testKey())
	require.ErrorIs(t, err, common.ErrorTamperOrKeyMismatch)
}

func TestDecrypt_TruncatedBlobFails(t *testing.T) {
	key := testKey()

	_, err := Decrypt([]byte{0x01, 0x02}, key)
	require.ErrorIs(t, err, common.ErrorTamperOrKeyMismatch)

	_, err = Decrypt(nil, key)
	require.ErrorIs(t, err, common.ErrorTamperOrKeyMismatch)
}

func TestEncryptDecrypt_RejectBadKeyLength(t *testing.T) {
	_, err := Encrypt([]byte("x"), []byte("short"))
	require.ErrorIs(t, err, common.ErrorMalformedInput)

	_, err = Decrypt([]byte("whatever"), []byte("short"))
	require.ErrorIs(t, err, common.ErrorMalformedInput)
}
