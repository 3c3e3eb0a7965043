package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransferRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransferRepository creates a new repository for money-transfer jobs.
func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepository {
	return &PgxTransferRepository{pool: pool}
}

var _ portsrepo.TransferRepository = (*PgxTransferRepository)(nil)

const transferColumns = `transfer_id, date, service_id, amount, fees, exchange_rate, sender_name, receiver_name, receiver_phone, notes, operation_id, created_at, last_updated_at`

// SaveTransfer inserts a transfer record.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		transfer.TransferID,
		transfer.Date,
		transfer.ServiceID,
		transfer.Amount,
		transfer.Fees,
		transfer.ExchangeRate,
		transfer.SenderName,
		transfer.ReceiverName,
		transfer.ReceiverPhone,
		transfer.Notes,
		transfer.OperationID,
		transfer.CreatedAt,
		transfer.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transfer %s: %w", transfer.TransferID, err)
	}
	return nil
}

// ListTransfers returns transfers in the date range, oldest first.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context, from, to time.Time) ([]domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		var t domain.Transfer
		err := rows.Scan(
			&t.TransferID,
			&t.Date,
			&t.ServiceID,
			&t.Amount,
			&t.Fees,
			&t.ExchangeRate,
			&t.SenderName,
			&t.ReceiverName,
			&t.ReceiverPhone,
			&t.Notes,
			&t.OperationID,
			&t.CreatedAt,
			&t.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfers: %w", err)
	}
	return transfers, nil
}
