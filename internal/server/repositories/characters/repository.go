package characters

import (
	"context"

	"github.com/teyvatdex/teyvatdex/internal/server/models"
)

// Repository is the read side of the character catalog. Upsert exists for
// the import tool only; the API never writes to this table.
type Repository interface {
	List(ctx context.Context) ([]*models.Character, error)
	GetByID(ctx context.Context, id int64) (*models.Character, error)
	Upsert(ctx context.Context, ch *models.Character) (int64, error)
}
