package targets

import (
	"context"

	"github.com/dmitrijs2005/earntrack/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, target *models.MonthlyTarget) (*models.MonthlyTarget, error)
	GetByUserID(ctx context.Context, userID string) (*models.MonthlyTarget, error)
}
