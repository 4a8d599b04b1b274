package favorites

import "context"

// Repository is the favorites store contract. Add and Remove are idempotent
// at the store boundary: a duplicate add or a remove of an absent pair
// returns false, never an error.
type Repository interface {
	Add(ctx context.Context, userID, characterID int64) (bool, error)
	Remove(ctx context.Context, userID, characterID int64) (bool, error)
	Exists(ctx context.Context, userID, characterID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]int64, error)
}
