package incomes

import (
	"context"

	"github.com/dmitrijs2005/earntrack/internal/server/models"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Month int // 1-12, 0 = any
	Year  int // 0 = any
	Limit int // 0 = no cap
}

type Repository interface {
	Create(ctx context.Context, entry *models.IncomeEntry) error
	List(ctx context.Context, userID string, f Filter) ([]*models.IncomeEntry, error)
	Delete(ctx context.Context, entryID, userID string) error
}
