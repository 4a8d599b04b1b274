// Package favorites provides the PostgreSQL-backed favorites store.
// Uniqueness of the (user_id, character_id) pair is enforced by the table
// constraint, so concurrent adds of the same pair resolve in the database:
// exactly one insert wins, the rest become no-ops.
package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/dbx"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add inserts the pair and reports whether a row was actually created.
// ON CONFLICT DO NOTHING makes the duplicate case a clean no-op instead
// of a constraint error. A foreign-key violation means the character id
// does not exist in the catalog and is reported as common.ErrNotFound.
func (r *PostgresRepository) Add(ctx context.Context, userID, characterID int64) (bool, error) {
	query := `
		INSERT INTO favorites (user_id, character_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, character_id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, userID, characterID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return false, common.ErrNotFound
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

// Remove deletes the pair and reports whether a row existed.
func (r *PostgresRepository) Remove(ctx context.Context, userID, characterID int64) (bool, error) {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND character_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, characterID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

// Exists reports whether the pair is present.
func (r *PostgresRepository) Exists(ctx context.Context, userID, characterID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM favorites
			WHERE user_id = $1 AND character_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, characterID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// ListByUser returns the character ids favorited by the user. Order is
// not significant.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT character_id FROM favorites
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ids, nil
}
