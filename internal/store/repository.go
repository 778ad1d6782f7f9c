// Package store owns persistence of user credential records. It defines
// the Repository interface plus four implementations: a JSON document
// file (the default), SQLite, PostgreSQL, and an in-memory store for
// tests.
package store

import (
	"context"

	"github.com/biohash-labs/biohash/internal/models"
)

// Repository is the credential store contract. Usernames are unique,
// case-sensitive keys. Implementations must be safe for use from a
// single process; the SQL-backed stores additionally tolerate
// concurrent callers.
type Repository interface {
	// Create inserts a new record. Returns common.ErrorDuplicateUser if
	// the username is already present.
	Create(ctx context.Context, user *models.UserRecord) error

	// GetByUsername returns the record for username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.UserRecord, error)

	// ListUsernames returns all usernames in insertion order.
	ListUsernames(ctx context.Context) ([]string, error)

	// DeleteAll removes every record. Confirmation of this destructive
	// operation is the caller's responsibility.
	DeleteAll(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// cloneRecord deep-copies a record, including its byte-slice fields, so
// stored state and values handed to callers never alias each other.
func cloneRecord(u *models.UserRecord) *models.UserRecord {
	record := *u
	record.Salt = append([]byte(nil), u.Salt...)
	record.BiometricHash = append([]byte(nil), u.BiometricHash...)
	record.EncryptedTotpSecret = append([]byte(nil), u.EncryptedTotpSecret...)
	return &record
}
