package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/biohash-labs/biohash/internal/common"
	"github.com/biohash-labs/biohash/internal/filex"
	"github.com/biohash-labs/biohash/internal/models"
)

// jsonUser is the on-disk form of a UserRecord. Byte fields are base64
// so the document stays text-safe.
type jsonUser struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Salt                string    `json:"salt"`
	BiometricHash       string    `json:"biometric_hash"`
	EncryptedTotpSecret string    `json:"encrypted_totp_secret"`
	CreatedAt           time.Time `json:"created_at"`
}

// jsonDocument is the full store document. Records are kept as an array
// to preserve insertion order.
type jsonDocument struct {
	Users []jsonUser `json:"users"`
}

// JSONRepository persists records as a single JSON document, rewritten
// atomically on every mutation. A missing file on open means an empty
// store; a file that exists but cannot be parsed is a hard error, so a
// corrupted store is never silently replaced.
type JSONRepository struct {
	path string

	mu    sync.Mutex
	users []*models.UserRecord
	index map[string]int
}

// NewJSONRepository loads (or initializes) the store document at path.
func NewJSONRepository(path string) (*JSONRepository, error) {
	r := &JSONRepository{
		path:  path,
		index: make(map[string]int),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store file %s is corrupted: %w", path, err)
	}

	for _, u := range doc.Users {
		record, err := u.toRecord()
		if err != nil {
			return nil, fmt.Errorf("store file %s is corrupted: %w", path, err)
		}
		r.index[record.Username] = len(r.users)
		r.users = append(r.users, record)
	}

	return r, nil
}

func (r *JSONRepository) Create(ctx context.Context, user *models.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[user.Username]; ok {
		return common.ErrorDuplicateUser
	}

	r.users = append(r.users, cloneRecord(user))
	r.index[user.Username] = len(r.users) - 1

	if err := r.persist(); err != nil {
		// Roll the in-memory state back so it keeps matching the file.
		r.users = r.users[:len(r.users)-1]
		delete(r.index, user.Username)
		return err
	}
	return nil
}

func (r *JSONRepository) GetByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return cloneRecord(r.users[i]), nil
}

func (r *JSONRepository) ListUsernames(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.users))
	for _, u := range r.users {
		names = append(names, u.Username)
	}
	return names, nil
}

func (r *JSONRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prevUsers, prevIndex := r.users, r.index
	r.users = nil
	r.index = make(map[string]int)

	if err := r.persist(); err != nil {
		r.users, r.index = prevUsers, prevIndex
		return err
	}
	return nil
}

func (r *JSONRepository) Close() error {
	return nil
}

// persist rewrites the whole document via temp-file-and-rename, so a
// crash mid-write leaves the previous file intact. Callers must hold mu.
func (r *JSONRepository) persist() error {
	doc := jsonDocument{Users: make([]jsonUser, 0, len(r.users))}
	for _, u := range r.users {
		doc.Users = append(doc.Users, fromRecord(u))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store document: %w", err)
	}

	if err := filex.WriteFileAtomic(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

func fromRecord(u *models.UserRecord) jsonUser {
	return jsonUser{
		ID:                  u.ID,
		Username:            u.Username,
		Salt:                base64.StdEncoding.EncodeToString(u.Salt),
		BiometricHash:       base64.StdEncoding.EncodeToString(u.BiometricHash),
		EncryptedTotpSecret: base64.StdEncoding.EncodeToString(u.EncryptedTotpSecret),
		CreatedAt:           u.CreatedAt,
	}
}

func (u jsonUser) toRecord() (*models.UserRecord, error) {
	salt, err := base64.StdEncoding.DecodeString(u.Salt)
	if err != nil {
		return nil, fmt.Errorf("record %q: bad salt encoding", u.Username)
	}
	hash, err := base64.StdEncoding.DecodeString(u.BiometricHash)
	if err != nil {
		return nil, fmt.Errorf("record %q: bad hash encoding", u.Username)
	}
	secret, err := base64.StdEncoding.DecodeString(u.EncryptedTotpSecret)
	if err != nil {
		return nil, fmt.Errorf("record %q: bad secret encoding", u.Username)
	}

	return &models.UserRecord{
		ID:                  u.ID,
		Username:            u.Username,
		Salt:                salt,
		BiometricHash:       hash,
		EncryptedTotpSecret: secret,
		CreatedAt:           u.CreatedAt,
	}, nil
}
