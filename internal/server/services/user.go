// Package services contains server-side business logic. This file implements
// UserService, the authentication gateway: registration, login, and
// identifying the user behind a session token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/server/auth"
	"github.com/teyvatdex/teyvatdex/internal/server/config"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
	"github.com/teyvatdex/teyvatdex/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 10

// AuthResult bundles a fresh session token with the authenticated user.
type AuthResult struct {
	Token string
	User  *models.User
}

// UserService provides authentication-related operations:
//   - Register: create a user and issue a token
//   - Login: verify credentials and issue a token
//   - Identify: resolve a session token to a live user
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// hashPassword is a seam for tests that do not want to pay the bcrypt cost.
var hashPassword = func(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
}

// Register creates a new user with a bcrypt-hashed password and issues a
// session token. A username or email already in use yields
// common.ErrConflict; the pre-check keeps the common case cheap, but the
// database constraint remains the authority when two registrations race.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.ErrValidation
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrConflict
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{Username: username, Email: email, PasswordHash: string(hash)}
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies the password against the stored bcrypt hash and issues a
// session token. An unknown email yields common.ErrNotFound; a wrong
// password yields common.ErrInvalidCredentials. bcrypt's comparison is
// constant-time with respect to the hash.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Identify resolves a session token to the user it was issued for. Any
// token failure, and a token whose user no longer exists, yields
// common.ErrUnauthorized. Every protected operation guards through this.
func (s *UserService) Identify(ctx context.Context, token string) (*models.User, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}
