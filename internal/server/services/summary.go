package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/incomes"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/repomanager"
)

// monthNames is indexed by calendar month 1-12; index 0 is unused.
var monthNames = [13]string{"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// SummaryService computes aggregates over the income ledger and the target
// store. It persists nothing itself. The wall clock is a field so tests can
// pin "now".
type SummaryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewSummaryService(db *sql.DB, m repomanager.RepositoryManager) *SummaryService {
	return &SummaryService{db: db, repomanager: m, now: time.Now}
}

// targetValue returns the stored monthly target, or 0 when none is set.
func (s *SummaryService) targetValue(ctx context.Context, userID string) (float64, error) {
	target, err := s.repomanager.Targets(s.db).GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("error loading target: %w", err)
	}
	return target.MonthlyTarget, nil
}

func (s *SummaryService) summarize(ctx context.Context, userID string, month, year int, target float64) (*models.MonthlySummary, error) {
	entries, err := s.repomanager.Incomes(s.db).List(ctx, userID, incomes.Filter{Month: month, Year: year, Limit: monthlyListCap})
	if err != nil {
		return nil, fmt.Errorf("error listing income entries: %w", err)
	}

	var total float64
	for _, e := range entries {
		total += e.Amount
	}

	return &models.MonthlySummary{
		Month:        month,
		Year:         year,
		MonthName:    monthNames[month],
		Total:        total,
		Target:       target,
		Remaining:    target - total,
		EntriesCount: len(entries),
	}, nil
}

// Monthly aggregates one calendar month. month must be 1-12.
func (s *SummaryService) Monthly(ctx context.Context, userID string, month, year int) (*models.MonthlySummary, error) {
	target, err := s.targetValue(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, userID, month, year, target)
}

// YearToDate sums all entries recorded in the current calendar year and
// returns the total together with that year.
func (s *SummaryService) YearToDate(ctx context.Context, userID string) (float64, int, error) {
	year := s.now().UTC().Year()

	entries, err := s.repomanager.Incomes(s.db).List(ctx, userID, incomes.Filter{Year: year, Limit: yearlyListCap})
	if err != nil {
		return 0, 0, fmt.Errorf("error listing income entries: %w", err)
	}

	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return total, year, nil
}

// TrailingTwelveMonths returns one summary per month, current month first,
// walking back 11 steps with year rollover when the month counter drops to
// zero. The target is fetched once and applied identically to every bucket.
func (s *SummaryService) TrailingTwelveMonths(ctx context.Context, userID string) ([]*models.MonthlySummary, error) {
	now := s.now().UTC()
	currentMonth := int(now.Month())
	currentYear := now.Year()

	target, err := s.targetValue(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.MonthlySummary, 0, 12)
	for i := 0; i < 12; i++ {
		month := currentMonth - i
		year := currentYear
		if month <= 0 {
			month += 12
			year--
		}

		summary, err := s.summarize(ctx, userID, month, year, target)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
