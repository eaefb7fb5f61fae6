package targets

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
)

// InMemoryRepository keeps at most one target per user in a map guarded by
// a mutex.
type InMemoryRepository struct {
	mu      sync.RWMutex
	targets map[string]*models.MonthlyTarget // keyed by user id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{targets: make(map[string]*models.MonthlyTarget)}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, target *models.MonthlyTarget) (*models.MonthlyTarget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.targets[target.UserID]; ok {
		// overwrite in place, keeping the original id
		target.ID = existing.ID
	}
	stored := *target
	r.targets[target.UserID] = &stored
	return target, nil
}

func (r *InMemoryRepository) GetByUserID(ctx context.Context, userID string) (*models.MonthlyTarget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	target, ok := r.targets[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	found := *target
	return &found, nil
}
