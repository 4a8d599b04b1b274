package users

import (
	"context"

	"github.com/teyvatdex/teyvatdex/internal/server/models"
)

// Repository is the credential store contract. Create must surface a
// username/email collision as common.ErrConflict even when the caller
// pre-checked existence: the database constraint is the authority.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
