// Package common defines shared sentinel errors and small byte-slice
// helpers used across the BioHash components. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("user not found")
	ErrorDuplicateUser = errors.New("user already exists")

	// Verification outcomes. The individual factor errors are always
	// joined with ErrorAuthenticationFailed so that callers can report
	// a generic failure without revealing which factor rejected.
	ErrorAuthenticationFailed = errors.New("authentication failed")
	ErrorBiometricMismatch    = errors.New("biometric mismatch")
	ErrorTotpMismatch         = errors.New("one-time code mismatch")

	// Envelope errors (authentication tag failure or wrong key).
	ErrorTamperOrKeyMismatch = errors.New("decryption failed: tampered data or key mismatch")

	// Validation errors (bad salt/secret/username shape).
	ErrorMalformedInput = errors.New("malformed input")
)
