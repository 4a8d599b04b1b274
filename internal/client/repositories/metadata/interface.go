// Package metadata is the key/value store behind the client session cache.
// It holds the session token, the signed-in username, and the cached
// favorite id set.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyToken     = "token"
	KeyUsername  = "username"
	KeyFavorites = "favorites"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
