// Package services contains application services for the TeyvatDex client.
// This file defines the authentication service: register, login, logout,
// and the locally cached session.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/teyvatdex/teyvatdex/internal/client/api"
	"github.com/teyvatdex/teyvatdex/internal/client/repositories/metadata"
	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/dbx"
)

// ErrNotLoggedIn is returned when an operation needs a session and the
// cache holds none.
var ErrNotLoggedIn = errors.New("not logged in")

// Session is the locally cached sign-in state.
type Session struct {
	Token    string
	Username string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account on the server and cache the session.
//   - Login: authenticate and cache the session plus the favorite set.
//   - Me: resolve the current session to the account it belongs to.
//   - Session: return the cached session, ErrNotLoggedIn when absent.
//   - Logout: wipe the cached session and favorites.
//   - Ping: check server liveness.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username, email string, password []byte) (*Session, error)
	Login(ctx context.Context, email string, password []byte) (*Session, error)
	Me(ctx context.Context) (*api.User, error)
	Session(ctx context.Context) (*Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API and a
// local SQLite cache.
type authService struct {
	client api.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and cache.
func NewAuthService(client api.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// saveSession persists the session and the favorite id set in a single
// transaction, replacing whatever session was cached before.
func (a *authService) saveSession(ctx context.Context, token, username string, favorites []int64) error {
	if favorites == nil {
		favorites = []int64{}
	}
	favData, err := json.Marshal(favorites)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyToken, []byte(token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyUsername, []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyFavorites, favData)
	})
}

// Register creates an account and caches the fresh session. A new account
// has no favorites yet, so the cached set starts empty.
func (a *authService) Register(ctx context.Context, username, email string, password []byte) (*Session, error) {
	payload, err := a.client.Register(ctx, username, email, string(password))
	if err != nil {
		return nil, err
	}

	if err := a.saveSession(ctx, payload.Token, payload.User.Username, nil); err != nil {
		return nil, fmt.Errorf("session caching error: %w", err)
	}

	return &Session{Token: payload.Token, Username: payload.User.Username}, nil
}

// Login authenticates against the server and caches the session together
// with the server's favorite set, so favorites stay readable offline.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*Session, error) {
	payload, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}

	favorites, err := a.client.Favorites(ctx, payload.Token)
	if err != nil {
		// The session is valid even if the favorites fetch failed; cache
		// an empty set and let the next listing refresh it.
		favorites = nil
	}

	if err := a.saveSession(ctx, payload.Token, payload.User.Username, favorites); err != nil {
		return nil, fmt.Errorf("session caching error: %w", err)
	}

	return &Session{Token: payload.Token, Username: payload.User.Username}, nil
}

// Session returns the cached session, or ErrNotLoggedIn when none is stored.
func (a *authService) Session(ctx context.Context) (*Session, error) {
	repo := a.getMetadataRepo()

	token, err := repo.Get(ctx, metadata.KeyToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, ErrNotLoggedIn
	}

	username, err := repo.Get(ctx, metadata.KeyUsername)
	if err != nil {
		return nil, err
	}

	return &Session{Token: string(token), Username: string(username)}, nil
}

// Me resolves the cached session against the server. A stale token yields
// common.ErrUnauthorized from the API.
func (a *authService) Me(ctx context.Context) (*api.User, error) {
	session, err := a.Session(ctx)
	if err != nil {
		return nil, err
	}

	user, err := a.client.Me(ctx, session.Token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, err
		}
		return nil, fmt.Errorf("error resolving session: %w", err)
	}
	return user, nil
}

// Logout wipes the cached session and favorite set. The server keeps no
// session state, so there is nothing to revoke remotely.
func (a *authService) Logout(ctx context.Context) error {
	return a.getMetadataRepo().Clear(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
