package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/dbx"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
	charactersrepo "github.com/teyvatdex/teyvatdex/internal/server/repositories/characters"
	favoritesrepo "github.com/teyvatdex/teyvatdex/internal/server/repositories/favorites"
	usersrepo "github.com/teyvatdex/teyvatdex/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

type fakeFavoritesRepo struct {
	addOut bool
	addErr error

	removeOut bool
	removeErr error

	existsOut bool
	existsErr error

	listOut []int64
	listErr error

	addCalls int
}

func (f *fakeFavoritesRepo) Add(ctx context.Context, userID, characterID int64) (bool, error) {
	f.addCalls++
	return f.addOut, f.addErr
}

func (f *fakeFavoritesRepo) Remove(ctx context.Context, userID, characterID int64) (bool, error) {
	return f.removeOut, f.removeErr
}

func (f *fakeFavoritesRepo) Exists(ctx context.Context, userID, characterID int64) (bool, error) {
	return f.existsOut, f.existsErr
}

func (f *fakeFavoritesRepo) ListByUser(ctx context.Context, userID int64) ([]int64, error) {
	return f.listOut, f.listErr
}

type fakeCharactersRepo struct {
	listOut   []*models.Character
	listErr   error
	listCalls int

	getOut *models.Character
	getErr error

	upsertErr   error
	upsertCalls int
}

func (f *fakeCharactersRepo) List(ctx context.Context) ([]*models.Character, error) {
	f.listCalls++
	return f.listOut, f.listErr
}

func (f *fakeCharactersRepo) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return nil, common.ErrNotFound
	}
	return f.getOut, nil
}

func (f *fakeCharactersRepo) Upsert(ctx context.Context, ch *models.Character) (int64, error) {
	f.upsertCalls++
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}
	return int64(f.upsertCalls), nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	f *fakeFavoritesRepo
	c *fakeCharactersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }

func (m *fakeRepoManager) Favorites(db dbx.DBTX) favoritesrepo.Repository { return m.f }

func (m *fakeRepoManager) Characters(db dbx.DBTX) charactersrepo.Repository { return m.c }
