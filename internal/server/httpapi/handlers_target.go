package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/earntrack/internal/common"
)

type setTargetRequest struct {
	MonthlyTarget float64 `json:"monthly_target"`
}

func (s *Server) handleSetTarget(w http.ResponseWriter, r *http.Request) error {
	user, ok := CurrentUser(r.Context())
	if !ok {
		return ErrUnauthorized("")
	}

	var req setTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ErrBadRequestWrap("Invalid request body", err)
	}

	target, err := s.targets.Set(r.Context(), user.ID, req.MonthlyTarget)
	if err != nil {
		return err
	}

	RespondWithJSON(w, http.StatusOK, target)
	return nil
}

func (s *Server) handleGetTarget(w http.ResponseWriter, r *http.Request) error {
	user, ok := CurrentUser(r.Context())
	if !ok {
		return ErrUnauthorized("")
	}

	target, err := s.targets.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrNotFound("Target not set")
		}
		return err
	}

	RespondWithJSON(w, http.StatusOK, target)
	return nil
}
