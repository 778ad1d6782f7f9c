// Package totp implements the RFC 6238 time-based one-time-password
// algorithm: secret generation, code derivation for a time step, code
// verification with bounded clock-skew tolerance, and provisioning-URI
// construction for authenticator apps.
package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/biohash-labs/biohash/internal/common"
)

const (
	// Digits is the length of a generated code.
	Digits = 6

	// Period is the length of one time step.
	Period = 30 * time.Second

	// SecretSize is the secret length in bytes (160 bits, the RFC 4226
	// recommendation).
	SecretSize = 20

	// SkewSteps is the number of time steps accepted on either side of
	// the current one. One step covers ±30s of clock drift; codes
	// outside this window are rejected even if previously valid.
	SkewSteps = 1

	// Algorithm is the HMAC algorithm advertised in provisioning URIs.
	Algorithm = "SHA1"
)

var codeRegexp = regexp.MustCompile(`^\d{6}$`)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateSecret returns a fresh random secret of SecretSize bytes.
func GenerateSecret() ([]byte, error) {
	return common.GenerateRandByteArray(SecretSize), nil
}

// EncodeSecret encodes a secret as unpadded base32 for manual entry and
// provisioning URIs.
func EncodeSecret(secret []byte) string {
	return b32.EncodeToString(secret)
}

// DecodeSecret decodes an unpadded base32 secret.
func DecodeSecret(s string) ([]byte, error) {
	secret, err := b32.DecodeString(strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base32 secret", common.ErrorMalformedInput)
	}
	return secret, nil
}

// CodeAt computes the 6-digit code for the time step containing t.
// A secret shorter than SecretSize is an input error, never padded.
func CodeAt(secret []byte, t time.Time) (string, error) {
	if len(secret) < SecretSize {
		return "", fmt.Errorf("%w: secret must be at least %d bytes, got %d", common.ErrorMalformedInput, SecretSize, len(secret))
	}
	return hotp(secret, counterAt(t)), nil
}

// Verify reports whether code is valid for secret at time t, accepting
// the previous, current and next time step. The comparison is constant
// time per candidate window.
func Verify(secret []byte, code string, t time.Time) (bool, error) {
	if len(secret) < SecretSize {
		return false, fmt.Errorf("%w: secret must be at least %d bytes, got %d", common.ErrorMalformedInput, SecretSize, len(secret))
	}

	code = strings.TrimSpace(code)
	if !codeRegexp.MatchString(code) {
		return false, nil
	}

	counter := counterAt(t)
	match := 0
	for step := -int64(SkewSteps); step <= int64(SkewSteps); step++ {
		candidate := hotp(secret, counter+step)
		// Check every window regardless of earlier matches to keep the
		// comparison count independent of the input.
		match |= subtle.ConstantTimeCompare([]byte(candidate), []byte(code))
	}

	return match == 1, nil
}

// ProvisioningURI builds an otpauth:// URI embedding the base32-encoded
// secret, in the Key Uri Format understood by authenticator apps.
func ProvisioningURI(username string, secret []byte, issuer string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("%w: empty username", common.ErrorMalformedInput)
	}
	if issuer == "" {
		return "", fmt.Errorf("%w: empty issuer", common.ErrorMalformedInput)
	}
	if len(secret) < SecretSize {
		return "", fmt.Errorf("%w: secret must be at least %d bytes, got %d", common.ErrorMalformedInput, SecretSize, len(secret))
	}

	label := fmt.Sprintf("%s:%s", url.PathEscape(issuer), url.PathEscape(username))

	query := url.Values{}
	query.Set("secret", EncodeSecret(secret))
	query.Set("issuer", issuer)
	query.Set("algorithm", Algorithm)
	query.Set("digits", fmt.Sprintf("%d", Digits))
	query.Set("period", fmt.Sprintf("%d", int(Period.Seconds())))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

func counterAt(t time.Time) int64 {
	return t.Unix() / int64(Period.Seconds())
}

// hotp implements the RFC 4226 HMAC-based one-time-password algorithm
// with HMAC-SHA1 and dynamic truncation.
func hotp(key []byte, counter int64) string {
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], uint64(counter))

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes[:])
	sum := mac.Sum(nil)

	// Dynamic truncation: low 4 bits of the last byte select the offset,
	// 31 bits are extracted there (MSB cleared to avoid sign issues).
	offset := sum[len(sum)-1] & 0x0f
	value := (uint32(sum[offset]&0x7f) << 24) |
		(uint32(sum[offset+1]) << 16) |
		(uint32(sum[offset+2]) << 8) |
		uint32(sum[offset+3])

	return fmt.Sprintf("%06d", value%1_000_000)
}
