package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/incomes"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Practical caps on list sizes: month-scoped queries stay small, whole-year
// queries may carry more rows.
const (
	monthlyListCap = 1000
	yearlyListCap  = 10000
)

// IncomeService implements the income ledger: per-user create, list, and
// delete over income entries.
type IncomeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewIncomeService(db *sql.DB, m repomanager.RepositoryManager) *IncomeService {
	return &IncomeService{db: db, repomanager: m}
}

// parseEntryDate splits an ISO "YYYY-MM-DD" date into its year and month
// components. Anything that does not decompose into two leading numeric
// components yields common.ErrorInvalidDate.
func parseEntryDate(date string) (year, month int, err error) {
	parts := strings.Split(date, "-")
	if len(parts) < 2 {
		return 0, 0, common.ErrorInvalidDate
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, common.ErrorInvalidDate
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, common.ErrorInvalidDate
	}
	return year, month, nil
}

// Create records an income entry for userID with month and year derived
// from the date string.
func (s *IncomeService) Create(ctx context.Context, userID, date string, amount float64, source string) (*models.IncomeEntry, error) {
	year, month, err := parseEntryDate(date)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, common.ErrorInvalidAmount
	}

	entry := &models.IncomeEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Amount:    amount,
		Source:    source,
		Month:     month,
		Year:      year,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repomanager.Incomes(s.db).Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("error creating income entry: %w", err)
	}
	return entry, nil
}

// List returns the user's entries, most recent date first. A month or year
// of 0 means "no filter" on that field.
func (s *IncomeService) List(ctx context.Context, userID string, month, year int) ([]*models.IncomeEntry, error) {
	limit := yearlyListCap
	if month != 0 {
		limit = monthlyListCap
	}

	entries, err := s.repomanager.Incomes(s.db).List(ctx, userID, incomes.Filter{Month: month, Year: year, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("error listing income entries: %w", err)
	}
	return entries, nil
}

// Delete removes an entry only when both id and owner match. A foreign or
// absent entry reports common.ErrorNotFound either way, so the existence of
// another user's entries is never revealed.
func (s *IncomeService) Delete(ctx context.Context, entryID, userID string) error {
	return s.repomanager.Incomes(s.db).Delete(ctx, entryID, userID)
}
