package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/earntrack/internal/server/models"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TargetService manages the single monthly target per user.
type TargetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTargetService(db *sql.DB, m repomanager.RepositoryManager) *TargetService {
	return &TargetService{db: db, repomanager: m}
}

// Set upserts the user's monthly target. When a target already exists its
// row id survives; only value and timestamp change.
func (s *TargetService) Set(ctx context.Context, userID string, value float64) (*models.MonthlyTarget, error) {
	target := &models.MonthlyTarget{
		ID:            uuid.NewString(),
		UserID:        userID,
		MonthlyTarget: value,
		UpdatedAt:     time.Now().UTC(),
	}

	target, err := s.repomanager.Targets(s.db).Upsert(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("error setting target: %w", err)
	}
	return target, nil
}

// Get surfaces absence explicitly as common.ErrorNotFound; the aggregation
// engine, by contrast, treats "no target" as the value 0.
func (s *TargetService) Get(ctx context.Context, userID string) (*models.MonthlyTarget, error) {
	return s.repomanager.Targets(s.db).GetByUserID(ctx, userID)
}
