package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/teyvatdex/teyvatdex/internal/client/api"
	"github.com/teyvatdex/teyvatdex/internal/server/models"

	_ "modernc.org/sqlite"
)

func newCacheDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	// Every pooled connection would otherwise see its own empty in-memory
	// database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	if err != nil {
		t.Fatalf("schema error: %v", err)
	}
	return db
}

type fakeAPIClient struct {
	registerResp *api.AuthPayload
	registerErr  error

	loginResp *api.AuthPayload
	loginErr  error

	meResp *api.User
	meErr  error

	charactersResp []*models.Character
	charactersErr  error

	addErr    error
	removeErr error

	favoritesResp []int64
	favoritesErr  error

	checkResp bool
	checkErr  error

	pingErr error

	lastToken string
}

func (f *fakeAPIClient) Register(ctx context.Context, username, email, password string) (*api.AuthPayload, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAPIClient) Login(ctx context.Context, email, password string) (*api.AuthPayload, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAPIClient) Me(ctx context.Context, token string) (*api.User, error) {
	f.lastToken = token
	return f.meResp, f.meErr
}

func (f *fakeAPIClient) Characters(ctx context.Context) ([]*models.Character, error) {
	return f.charactersResp, f.charactersErr
}

func (f *fakeAPIClient) Character(ctx context.Context, id int64) (*models.Character, error) {
	for _, ch := range f.charactersResp {
		if ch.ID == id {
			return ch, nil
		}
	}
	return nil, f.charactersErr
}

func (f *fakeAPIClient) PortraitURL(ctx context.Context, id int64) (string, error) {
	return "", nil
}

func (f *fakeAPIClient) AddFavorite(ctx context.Context, token string, characterID int64) error {
	f.lastToken = token
	return f.addErr
}

func (f *fakeAPIClient) RemoveFavorite(ctx context.Context, token string, characterID int64) error {
	f.lastToken = token
	return f.removeErr
}

func (f *fakeAPIClient) Favorites(ctx context.Context, token string) ([]int64, error) {
	f.lastToken = token
	return f.favoritesResp, f.favoritesErr
}

func (f *fakeAPIClient) CheckFavorite(ctx context.Context, token string, characterID int64) (bool, error) {
	f.lastToken = token
	return f.checkResp, f.checkErr
}

func (f *fakeAPIClient) Ping(ctx context.Context) error {
	return f.pingErr
}
