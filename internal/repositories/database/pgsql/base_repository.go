package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository carries the shared pgx pool and the transaction helpers the
// per-table repositories embed.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin opens a DB transaction for a multi-statement write, such as a
// balanced journal batch.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", apperrors.ErrStoreFailure, err)
	}
	return tx, nil
}

// Commit makes the transaction's writes visible as a unit.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", apperrors.ErrStoreFailure, err)
	}
	return nil
}

// Rollback discards an uncommitted transaction. Safe to defer past a
// successful Commit; a finished transaction is not an error.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: rollback transaction: %v", apperrors.ErrStoreFailure, err)
	}
	return nil
}
