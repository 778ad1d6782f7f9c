// Package models defines the data structures persisted by the
// credential store.
package models

import "time"

// UserRecord couples a username with the at-rest derivatives of its two
// authentication factors. Only the salted hash of the biometric feature
// vector and the AEAD-encrypted TOTP secret are ever persisted; the
// plaintext counterparts exist in memory only during registration and
// authentication.
//
// Usernames are unique, case-sensitive keys. Records are created once
// and never mutated afterwards.
type UserRecord struct {
	ID                  string
	Username            string
	Salt                []byte
	BiometricHash       []byte
	EncryptedTotpSecret []byte
	CreatedAt           time.Time
}
