package repomanager

import (
	"context"
	"database/sql"

	"github.com/teyvatdex/teyvatdex/internal/dbx"
	"github.com/teyvatdex/teyvatdex/internal/server/repositories/characters"
	"github.com/teyvatdex/teyvatdex/internal/server/repositories/favorites"
	"github.com/teyvatdex/teyvatdex/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// owns schema migrations. Services hold a manager instead of concrete
// repositories so that tests can substitute fakes per aggregate.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Characters(db dbx.DBTX) characters.Repository
	Favorites(db dbx.DBTX) favorites.Repository
}
