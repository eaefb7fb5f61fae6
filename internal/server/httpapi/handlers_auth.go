package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) error {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ErrBadRequestWrap("Invalid request body", err)
	}
	if req.Email == "" || req.Password == "" {
		return ErrBadRequest("Email and password are required")
	}

	creds, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return ErrBadRequest("Email already registered")
		}
		return err
	}

	s.logger.Info(r.Context(), "User registered", "user_id", creds.User.ID)

	RespondWithJSON(w, http.StatusOK, tokenResponse{
		AccessToken: creds.AccessToken,
		TokenType:   "bearer",
		User:        creds.User,
	})
	return nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) error {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ErrBadRequestWrap("Invalid request body", err)
	}

	creds, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// same message for unknown email and wrong password
			return ErrUnauthorized("Invalid email or password")
		}
		return err
	}

	RespondWithJSON(w, http.StatusOK, tokenResponse{
		AccessToken: creds.AccessToken,
		TokenType:   "bearer",
		User:        creds.User,
	})
	return nil
}
