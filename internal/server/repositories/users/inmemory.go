package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
)

// InMemoryRepository keeps users in a map guarded by a mutex. It backs unit
// tests and the no-database dev mode.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User // keyed by user id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorEmailTaken
		}
	}

	stored := *user
	r.users[user.ID] = &stored
	return user, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	found := *u
	return &found, nil
}
