package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"

	"github.com/teyvatdex/teyvatdex/internal/client/api"
	"github.com/teyvatdex/teyvatdex/internal/client/repositories/metadata"
)

// ReconcileResult states how a favorite toggle was applied.
type ReconcileResult int

const (
	// Failed: neither the server nor the cache accepted the change.
	Failed ReconcileResult = iota
	// AppliedRemotely: the server accepted the change and the cache
	// reflects it.
	AppliedRemotely
	// AppliedLocallyOnly: the server was unreachable; only the cached set
	// changed. The next successful listing overwrites it with the
	// server's view.
	AppliedLocallyOnly
)

func (r ReconcileResult) String() string {
	switch r {
	case AppliedRemotely:
		return "applied"
	case AppliedLocallyOnly:
		return "applied locally (server unavailable)"
	default:
		return "failed"
	}
}

// FavoriteService manages the user's favorite set, keeping the local cache
// in step with the server and falling back to the cache when offline.
type FavoriteService interface {
	Add(ctx context.Context, characterID int64) (ReconcileResult, error)
	Remove(ctx context.Context, characterID int64) (ReconcileResult, error)
	List(ctx context.Context) ([]int64, error)
	Check(ctx context.Context, characterID int64) (bool, error)
}

type favoriteService struct {
	client api.Client
	db     *sql.DB
	auth   AuthService
}

// NewFavoriteService constructs a FavoriteService bound to the given API
// client, cache, and auth service (for the session token).
func NewFavoriteService(client api.Client, db *sql.DB, auth AuthService) FavoriteService {
	return &favoriteService{client: client, db: db, auth: auth}
}

func (f *favoriteService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(f.db)
}

func (f *favoriteService) cachedSet(ctx context.Context) (map[int64]bool, error) {
	data, err := f.getMetadataRepo().Get(ctx, metadata.KeyFavorites)
	if err != nil {
		return nil, err
	}

	set := make(map[int64]bool)
	if len(data) == 0 {
		return set, nil
	}

	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (f *favoriteService) saveSet(ctx context.Context, set map[int64]bool) error {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return f.getMetadataRepo().Set(ctx, metadata.KeyFavorites, data)
}

// toggle applies one membership change remotely first, then mirrors it in
// the cache. When only the transport failed, the change is kept locally
// and reported as AppliedLocallyOnly.
func (f *favoriteService) toggle(ctx context.Context, characterID int64, mark bool) (ReconcileResult, error) {
	session, err := f.auth.Session(ctx)
	if err != nil {
		return Failed, err
	}

	if mark {
		err = f.client.AddFavorite(ctx, session.Token, characterID)
	} else {
		err = f.client.RemoveFavorite(ctx, session.Token, characterID)
	}

	result := AppliedRemotely
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return Failed, err
		}
		result = AppliedLocallyOnly
	}

	set, cacheErr := f.cachedSet(ctx)
	if cacheErr == nil {
		if mark {
			set[characterID] = true
		} else {
			delete(set, characterID)
		}
		cacheErr = f.saveSet(ctx, set)
	}
	if cacheErr != nil {
		if result == AppliedLocallyOnly {
			// Neither side holds the change now.
			return Failed, cacheErr
		}
		// The server has the change; the stale cache self-heals on the
		// next successful listing.
	}

	return result, nil
}

// Add marks the character as a favorite.
func (f *favoriteService) Add(ctx context.Context, characterID int64) (ReconcileResult, error) {
	return f.toggle(ctx, characterID, true)
}

// Remove unmarks the favorite.
func (f *favoriteService) Remove(ctx context.Context, characterID int64) (ReconcileResult, error) {
	return f.toggle(ctx, characterID, false)
}

// List returns the favorite id set, preferring the server's view and
// refreshing the cache from it. When the server is unreachable, the cached
// set is served instead.
func (f *favoriteService) List(ctx context.Context) ([]int64, error) {
	session, err := f.auth.Session(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := f.client.Favorites(ctx, session.Token)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return nil, err
		}
		set, cacheErr := f.cachedSet(ctx)
		if cacheErr != nil {
			return nil, cacheErr
		}
		ids = make([]int64, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		return ids, nil
	}

	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	// Refresh failures only affect offline reads; the listing itself
	// succeeded.
	_ = f.saveSet(ctx, set)

	return ids, nil
}

// Check reports whether the character is currently a favorite, using the
// cached set when the server is unreachable.
func (f *favoriteService) Check(ctx context.Context, characterID int64) (bool, error) {
	session, err := f.auth.Session(ctx)
	if err != nil {
		return false, err
	}

	exists, err := f.client.CheckFavorite(ctx, session.Token, characterID)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return false, err
		}
		set, cacheErr := f.cachedSet(ctx)
		if cacheErr != nil {
			return false, cacheErr
		}
		return set[characterID], nil
	}
	return exists, nil
}
