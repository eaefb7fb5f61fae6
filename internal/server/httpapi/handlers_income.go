package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type createIncomeRequest struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
}

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) error {
	user, ok := CurrentUser(r.Context())
	if !ok {
		return ErrUnauthorized("")
	}

	var req createIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ErrBadRequestWrap("Invalid request body", err)
	}

	entry, err := s.incomes.Create(r.Context(), user.ID, req.Date, req.Amount, req.Source)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidDate) {
			return ErrBadRequest("Invalid date format, expected YYYY-MM-DD")
		}
		if errors.Is(err, common.ErrorInvalidAmount) {
			return ErrBadRequest("Amount must not be negative")
		}
		return err
	}

	RespondWithJSON(w, http.StatusOK, entry)
	return nil
}

// queryInt parses an optional integer query parameter, returning 0 when the
// parameter is absent.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrBadRequest("Invalid " + name + " parameter")
	}
	return v, nil
}

func (s *Server) handleListIncome(w http.ResponseWriter, r *http.Request) error {
	user, ok := CurrentUser(r.Context())
	if !ok {
		return ErrUnauthorized("")
	}

	month, err := queryInt(r, "month")
	if err != nil {
		return err
	}
	year, err := queryInt(r, "year")
	if err != nil {
		return err
	}

	entries, err := s.incomes.List(r.Context(), user.ID, month, year)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*models.IncomeEntry{}
	}

	RespondWithJSON(w, http.StatusOK, entries)
	return nil
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) error {
	user, ok := CurrentUser(r.Context())
	if !ok {
		return ErrUnauthorized("")
	}

	entryID := chi.URLParam(r, paramID)

	if err := s.incomes.Delete(r.Context(), entryID, user.ID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrNotFound("Entry not found")
		}
		return err
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Entry deleted successfully"})
	return nil
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) error {
	user, ok := CurrentUser(r.Context())
	if !ok {
		return ErrUnauthorized("")
	}

	month, err := queryInt(r, "month")
	if err != nil {
		return err
	}
	year, err := queryInt(r, "year")
	if err != nil {
		return err
	}
	// the month-name table is only defined for 1-12
	if month < 1 || month > 12 || year == 0 {
		return ErrBadRequest("month (1-12) and year are required")
	}

	summary, err := s.summaries.Monthly(r.Context(), user.ID, month, year)
	if err != nil {
		return err
	}

	RespondWithJSON(w, http.StatusOK, summary)
	return nil
}

func (s *Server) handleYearToDate(w http.ResponseWriter, r *http.Request) error {
	user, ok := CurrentUser(r.Context())
	if !ok {
		return ErrUnauthorized("")
	}

	total, year, err := s.summaries.YearToDate(r.Context(), user.ID)
	if err != nil {
		return err
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{"ytd_total": total, "year": year})
	return nil
}

func (s *Server) handleYearlySummary(w http.ResponseWriter, r *http.Request) error {
	user, ok := CurrentUser(r.Context())
	if !ok {
		return ErrUnauthorized("")
	}

	summaries, err := s.summaries.TrailingTwelveMonths(r.Context(), user.ID)
	if err != nil {
		return err
	}

	RespondWithJSON(w, http.StatusOK, summaries)
	return nil
}
