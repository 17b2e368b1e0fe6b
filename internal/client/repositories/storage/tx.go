package storage

import (
	"context"
	"database/sql"
)

// withTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
func withTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
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

// Atomic runs fn against a repository bound to a single transaction. When r
// is already transaction-bound fn joins that transaction.
func (r *SQLiteRepository) Atomic(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	db, ok := r.db.(*sql.DB)
	if !ok {
		return fn(ctx, r)
	}
	return withTx(ctx, db, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, NewSQLiteRepository(tx))
	})
}
