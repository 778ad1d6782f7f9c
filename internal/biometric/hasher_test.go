package biometric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biohash-labs/biohash/internal/common"
)

func testVector(t *testing.T) []float64 {
	t.Helper()
	v, err := NewSimulatedSampler().Sample("alice")
	require.NoError(t, err)
	return v
}

func TestHash_DeterministicForSameInputs(t *testing.T) {
	v := testVector(t)
	salt := NewSalt()

	h1, err := Hash(v, salt)
	require.NoError(t, err)
	h2, err := Hash(v, salt)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, HashSize)
}

func TestHash_RejectsBadSaltLength(t *testing.T) {
	v := testVector(t)

	_, err := Hash(v, []byte("short"))
	require.ErrorIs(t, err, common.ErrorMalformedInput)

	_, err = Hash(v, nil)
	require.ErrorIs(t, err, common.ErrorMalformedInput)
}

func TestVerify_RoundTrip(t *testing.T) {
	v := testVector(t)
	salt := NewSalt()

	h, err := Hash(v, salt)
	require.NoError(t, err)

	ok, err := Verify(v, salt, h)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_FailsOnModifiedVector(t *testing.T) {
	v := testVector(t)
	salt := NewSalt()

	h, err := Hash(v, salt)
	require.NoError(t, err)

	v[17] += 1e-9

	ok, err := Verify(v, salt, h)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_FailsOnModifiedSalt(t *testing.T) {
	v := testVector(t)
	salt := NewSalt()

	h, err := Hash(v, salt)
	require.NoError(t, err)

	salt[0] ^= 0x01

	ok, err := Verify(v, salt, h)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_FailsOnModifiedHash(t *testing.T) {
	v := testVector(t)
	salt := NewSalt()

	h, err := Hash(v, salt)
	require.NoError(t, err)

	h[31] ^= 0x80

	ok, err := Verify(v, salt, h)
	require.NoError(t, err)
	assert.False(t, ok)
}
