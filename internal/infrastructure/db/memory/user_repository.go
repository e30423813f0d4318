// Package memory provides the process-local stores backing the API. Each
// repository guards its table with a sync.RWMutex so concurrent requests see
// atomic mutations, and hands out copies so callers never alias the stored
// records.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mockshop/commerce-api/internal/core/domain"
)

// UserRepository is the in-memory account directory. Emails are keyed
// lowercase, which enforces case-insensitive uniqueness.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	key := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return domain.ErrEmailExists
	}

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[key] = &stored
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}
