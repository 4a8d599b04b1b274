package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/server/config"
	"github.com/teyvatdex/teyvatdex/internal/server/repositories/repomanager"
)

// FavoriteService is the favorites gateway. Callers pass the user id of an
// already-identified session; the transport layer performs the Identify
// guard before any of these methods run. Every call is a single idempotent
// statement against the store, with no retries.
type FavoriteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewFavoriteService constructs a FavoriteService.
func NewFavoriteService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *FavoriteService {
	return &FavoriteService{db: db, repomanager: m}
}

func validCharacterID(id int64) error {
	if id <= 0 {
		return common.ErrValidation
	}
	return nil
}

// Add marks the character as a favorite of the user. Returns false without
// error when the pair already exists. An unknown character id yields
// common.ErrNotFound (surfaced by the store's foreign key).
func (s *FavoriteService) Add(ctx context.Context, userID, characterID int64) (bool, error) {
	if err := validCharacterID(characterID); err != nil {
		return false, err
	}
	created, err := s.repomanager.Favorites(s.db).Add(ctx, userID, characterID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("error adding favorite: %w", err)
	}
	return created, nil
}

// Remove unmarks the favorite. Returns false without error when the pair
// was never present.
func (s *FavoriteService) Remove(ctx context.Context, userID, characterID int64) (bool, error) {
	if err := validCharacterID(characterID); err != nil {
		return false, err
	}
	removed, err := s.repomanager.Favorites(s.db).Remove(ctx, userID, characterID)
	if err != nil {
		return false, fmt.Errorf("error removing favorite: %w", err)
	}
	return removed, nil
}

// Check reports whether the character is currently a favorite of the user.
func (s *FavoriteService) Check(ctx context.Context, userID, characterID int64) (bool, error) {
	if err := validCharacterID(characterID); err != nil {
		return false, err
	}
	exists, err := s.repomanager.Favorites(s.db).Exists(ctx, userID, characterID)
	if err != nil {
		return false, fmt.Errorf("error checking favorite: %w", err)
	}
	return exists, nil
}

// List returns the ids of every character the user has favorited.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.repomanager.Favorites(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	return ids, nil
}
