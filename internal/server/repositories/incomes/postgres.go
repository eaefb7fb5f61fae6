// Package incomes provides repositories for per-user income entries. Every
// query filters on the owning user id, so one user can never see or touch
// another user's rows.
package incomes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/dbx"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.IncomeEntry) error {
	query := `
		INSERT INTO income_entries (id, user_id, date, amount, source, month, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Date, entry.Amount, entry.Source, entry.Month, entry.Year, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns the user's entries ordered by date descending; ties keep
// insertion order via the created_at tiebreak.
func (r *PostgresRepository) List(ctx context.Context, userID string, f Filter) ([]*models.IncomeEntry, error) {
	query := `SELECT id, user_id, date, amount, source, month, year, created_at FROM income_entries
		WHERE user_id = $1`
	args := []any{userID}

	if f.Month != 0 {
		args = append(args, f.Month)
		query += fmt.Sprintf(" AND month = $%d", len(args))
	}
	if f.Year != 0 {
		args = append(args, f.Year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}
	query += " ORDER BY date DESC, created_at"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select income entries: %w", err)
	}
	defer rows.Close()

	var result []*models.IncomeEntry
	for rows.Next() {
		var item models.IncomeEntry
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Date, &item.Amount, &item.Source,
			&item.Month, &item.Year, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the entry only when both id and owner match. Zero affected
// rows (absent entry or foreign owner alike) yield common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, entryID, userID string) error {
	query := `DELETE FROM income_entries WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
