package services

import (
	"context"

	"github.com/teyvatdex/teyvatdex/internal/client/api"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
)

// CatalogService reads the character catalog. The catalog is public, so no
// session is involved.
type CatalogService interface {
	Characters(ctx context.Context) ([]*models.Character, error)
	Character(ctx context.Context, id int64) (*models.Character, error)
	PortraitURL(ctx context.Context, id int64) (string, error)
}

type catalogService struct {
	client api.Client
}

// NewCatalogService constructs a CatalogService over the API client.
func NewCatalogService(client api.Client) CatalogService {
	return &catalogService{client: client}
}

func (c *catalogService) Characters(ctx context.Context) ([]*models.Character, error) {
	return c.client.Characters(ctx)
}

func (c *catalogService) Character(ctx context.Context, id int64) (*models.Character, error) {
	return c.client.Character(ctx, id)
}

func (c *catalogService) PortraitURL(ctx context.Context, id int64) (string, error) {
	return c.client.PortraitURL(ctx, id)
}
