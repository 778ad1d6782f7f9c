package store

import (
	"context"
	"sync"

	"github.com/biohash-labs/biohash/internal/common"
	"github.com/biohash-labs/biohash/internal/models"
)

// InMemoryRepository keeps records in process memory. It exists for
// tests and for throwaway runs where persistence is undesirable.
type InMemoryRepository struct {
	mu    sync.Mutex
	users []*models.UserRecord
	index map[string]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{index: make(map[string]int)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[user.Username]; ok {
		return common.ErrorDuplicateUser
	}

	r.users = append(r.users, cloneRecord(user))
	r.index[user.Username] = len(r.users) - 1
	return nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return cloneRecord(r.users[i]), nil
}

func (r *InMemoryRepository) ListUsernames(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.users))
	for _, u := range r.users {
		names = append(names, u.Username)
	}
	return names, nil
}

func (r *InMemoryRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = nil
	r.index = make(map[string]int)
	return nil
}

func (r *InMemoryRepository) Close() error {
	return nil
}
