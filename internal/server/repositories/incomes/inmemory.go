package incomes

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
)

// InMemoryRepository keeps entries in insertion order guarded by a mutex.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []*models.IncomeEntry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, entry *models.IncomeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *entry
	r.entries = append(r.entries, &stored)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, userID string, f Filter) ([]*models.IncomeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.IncomeEntry
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		if f.Month != 0 && e.Month != f.Month {
			continue
		}
		if f.Year != 0 && e.Year != f.Year {
			continue
		}
		found := *e
		result = append(result, &found)
	}

	// date descending, ties keep insertion order
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})

	if f.Limit > 0 && len(result) > f.Limit {
		result = result[:f.Limit]
	}
	return result, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, entryID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == entryID && e.UserID == userID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
