// Package targets provides repositories for the single monthly target each
// user may have.
package targets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/dbx"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
)

// PostgresRepository implements target storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts the target or, when a row already exists for the user,
// overwrites its value and timestamp in place. The atomic ON CONFLICT form
// keeps the existing row id, so concurrent identical upserts cannot produce
// duplicate rows.
func (r *PostgresRepository) Upsert(ctx context.Context, target *models.MonthlyTarget) (*models.MonthlyTarget, error) {
	query := `
		INSERT INTO monthly_targets (id, user_id, monthly_target, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET
			monthly_target = EXCLUDED.monthly_target,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		target.ID, target.UserID, target.MonthlyTarget, target.UpdatedAt).Scan(&target.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return target, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.MonthlyTarget, error) {
	query :=
		`SELECT id, user_id, monthly_target, updated_at FROM monthly_targets
		 WHERE user_id = $1
		 `

	target := &models.MonthlyTarget{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&target.ID, &target.UserID, &target.MonthlyTarget, &target.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return target, nil
}
