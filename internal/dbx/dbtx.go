// Package dbx holds the small database plumbing shared by every repository:
// a DBTX interface satisfied by both *sql.DB and *sql.Tx, and a transaction
// wrapper that guarantees commit/rollback on every exit path.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql that repositories are allowed to use.
// Passing a *sql.Tx instead of a *sql.DB makes any repository transactional
// without code changes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil, rolled back when it returns an error, and rolled back with the
// panic rethrown when fn panics.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "DELETE FROM favorites WHERE user_id = $1", id)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
