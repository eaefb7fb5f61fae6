// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and resolving bearer
// tokens back to user records.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/dmitrijs2005/earntrack/internal/server/auth"
	"github.com/dmitrijs2005/earntrack/internal/server/config"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Credentials bundles a freshly issued access token with the account it
// belongs to.
type Credentials struct {
	AccessToken string
	User        *models.User
}

// UserService provides authentication-related operations:
// - Register: create users and mint their first token
// - Login: verify credentials and mint tokens
// - Authenticate: resolve a bearer token to a user record
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
	}
}

// Register creates a user with a bcrypt password hash and issues a token.
// A duplicate email yields common.ErrorEmailTaken.
func (s *UserService) Register(ctx context.Context, email, password string) (*Credentials, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	// the unique index backstops the check above against a concurrent register
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Credentials{AccessToken: token, User: user}, nil
}

// Login verifies the email and password and, on success, returns fresh
// Credentials. Unknown email and wrong password are indistinguishable: both
// yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*Credentials, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Credentials{AccessToken: token, User: user}, nil
}

// Authenticate resolves a bearer token to the user it identifies. Invalid
// tokens, tokens without a subject, and subjects with no matching user
// record all yield common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
