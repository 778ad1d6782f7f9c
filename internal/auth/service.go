// Package auth composes the biometric, TOTP, envelope and store
// primitives into the registration and authentication protocol.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/biohash-labs/biohash/internal/biometric"
	"github.com/biohash-labs/biohash/internal/common"
	"github.com/biohash-labs/biohash/internal/cryptox"
	"github.com/biohash-labs/biohash/internal/logging"
	"github.com/biohash-labs/biohash/internal/models"
	"github.com/biohash-labs/biohash/internal/store"
	"github.com/biohash-labs/biohash/internal/totp"
)

// Enrollment is the one-time registration result. The plaintext TOTP
// secret is never retrievable again after this value is discarded.
type Enrollment struct {
	Username        string
	SecretBase32    string
	ProvisioningURI string
}

// Service sequences the two-factor protocol over an injected store,
// sample provider and encryption key. All dependencies are explicit so
// tests can substitute in-memory stores and fixed clocks.
type Service struct {
	repo    store.Repository
	sampler biometric.SampleProvider
	key     []byte
	issuer  string
	logger  logging.Logger

	// now is the clock used for TOTP verification.
	now func() time.Time
}

func NewService(repo store.Repository, sampler biometric.SampleProvider, key []byte, issuer string, logger logging.Logger) *Service {
	return &Service{
		repo:    repo,
		sampler: sampler,
		key:     key,
		issuer:  issuer,
		logger:  logger,
		now:     time.Now,
	}
}

// Register creates a user record: a salted hash of the sampled feature
// vector plus a freshly generated, envelope-encrypted TOTP secret. The
// returned Enrollment carries the secret in base32 and the otpauth URI
// for one-time display to the user.
func (s *Service) Register(ctx context.Context, username string) (*Enrollment, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", common.ErrorMalformedInput)
	}

	features, err := s.sampler.Sample(username)
	if err != nil {
		return nil, fmt.Errorf("biometric sampling: %w", err)
	}

	salt := biometric.NewSalt()
	hash, err := biometric.Hash(features, salt)
	if err != nil {
		return nil, err
	}

	secret, err := totp.GenerateSecret()
	if err != nil {
		return nil, fmt.Errorf("secret generation: %w", err)
	}
	defer common.WipeByteArray(secret)

	encryptedSecret, err := cryptox.Encrypt(secret, s.key)
	if err != nil {
		return nil, fmt.Errorf("secret encryption: %w", err)
	}

	uri, err := totp.ProvisioningURI(username, secret, s.issuer)
	if err != nil {
		return nil, err
	}

	record := &models.UserRecord{
		ID:                  uuid.NewString(),
		Username:            username,
		Salt:                salt,
		BiometricHash:       hash,
		EncryptedTotpSecret: encryptedSecret,
		CreatedAt:           s.now().UTC(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "username", username)

	return &Enrollment{
		Username:        username,
		SecretBase32:    totp.EncodeSecret(secret),
		ProvisioningURI: uri,
	}, nil
}

// Authenticate verifies both factors in order: the biometric hash
// first, then the submitted TOTP code, short-circuiting on the first
// failure. Factor mismatches are joined with ErrorAuthenticationFailed
// so presentation layers can report a generic failure without leaking
// which factor rejected.
func (s *Service) Authenticate(ctx context.Context, username, submittedCode string) error {
	record, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	features, err := s.sampler.Sample(username)
	if err != nil {
		return fmt.Errorf("biometric sampling: %w", err)
	}

	ok, err := biometric.Verify(features, record.Salt, record.BiometricHash)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Debug(ctx, "authentication rejected", "username", username, "factor", "biometric")
		return errors.Join(common.ErrorAuthenticationFailed, common.ErrorBiometricMismatch)
	}

	secret, err := cryptox.Decrypt(record.EncryptedTotpSecret, s.key)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	ok, err = totp.Verify(secret, submittedCode, s.now())
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Debug(ctx, "authentication rejected", "username", username, "factor", "totp")
		return errors.Join(common.ErrorAuthenticationFailed, common.ErrorTotpMismatch)
	}

	s.logger.Info(ctx, "user authenticated", "username", username)
	return nil
}

// ListUsers returns all registered usernames in insertion order.
func (s *Service) ListUsers(ctx context.Context) ([]string, error) {
	return s.repo.ListUsernames(ctx)
}

// DeleteAllUsers removes every record. The caller is expected to have
// confirmed this destructive operation with the operator.
func (s *Service) DeleteAllUsers(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	s.logger.Warn(ctx, "all users deleted")
	return nil
}
