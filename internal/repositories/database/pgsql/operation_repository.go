package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOperationRepository struct {
	pool *pgxpool.Pool
}

// newPgxOperationRepository creates a new repository for payment-service
// operations.
func newPgxOperationRepository(pool *pgxpool.Pool) portsrepo.OperationRepository {
	return &PgxOperationRepository{pool: pool}
}

var _ portsrepo.OperationRepository = (*PgxOperationRepository)(nil)

const operationColumns = `operation_id, number, kind, service_id, date, principal, fees, commission,
	cash_before, cash_after, digital_before, digital_after,
	counterpart_name, counterpart_phone, notes, transaction_id, created_at, last_updated_at`

// SaveOperation inserts a recorded operation.
func (r *PgxOperationRepository) SaveOperation(ctx context.Context, op domain.Operation) error {
	query := `
		INSERT INTO operations (` + operationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.pool.Exec(ctx, query,
		op.OperationID,
		op.Number,
		op.Kind,
		op.ServiceID,
		op.Date,
		op.Principal,
		op.Fees,
		op.Commission,
		op.CashBefore,
		op.CashAfter,
		op.DigitalBefore,
		op.DigitalAfter,
		op.CounterpartName,
		op.CounterpartPhone,
		op.Notes,
		op.TransactionID,
		op.CreatedAt,
		op.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save operation %s: %w", op.OperationID, err)
	}
	return nil
}

// FindOperationByID retrieves one operation.
func (r *PgxOperationRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.Operation, error) {
	query := `
		SELECT ` + operationColumns + `
		FROM operations
		WHERE operation_id = $1;
	`
	op, err := scanOperation(r.pool.QueryRow(ctx, query, operationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operation %s: %w", operationID, err)
	}
	return op, nil
}

// FindLatestOperation returns the highest-numbered operation of a service.
func (r *PgxOperationRepository) FindLatestOperation(ctx context.Context, serviceID string) (*domain.Operation, error) {
	query := `
		SELECT ` + operationColumns + `
		FROM operations
		WHERE service_id = $1
		ORDER BY number DESC
		LIMIT 1;
	`
	op, err := scanOperation(r.pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest operation for service %s: %w", serviceID, err)
	}
	return op, nil
}

// ListOperations returns a service's operations in the date range, ordered by
// number. An empty serviceID lists all services.
func (r *PgxOperationRepository) ListOperations(ctx context.Context, serviceID string, from, to time.Time) ([]domain.Operation, error) {
	query := `
		SELECT ` + operationColumns + `
		FROM operations
		WHERE date >= $1 AND date <= $2 AND ($3 = '' OR service_id = $3)
		ORDER BY number ASC;
	`
	rows, err := r.pool.Query(ctx, query, from, to, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		ops = append(ops, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate operations: %w", err)
	}
	return ops, nil
}

// NextOperationNumber reserves the next monotonic operation number from the
// store sequence.
func (r *PgxOperationRepository) NextOperationNumber(ctx context.Context) (int64, error) {
	var number int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('operation_number_seq');`).Scan(&number); err != nil {
		return 0, fmt.Errorf("failed to reserve operation number: %w", err)
	}
	return number, nil
}

func scanOperation(row pgx.Row) (*domain.Operation, error) {
	var op domain.Operation
	err := row.Scan(
		&op.OperationID,
		&op.Number,
		&op.Kind,
		&op.ServiceID,
		&op.Date,
		&op.Principal,
		&op.Fees,
		&op.Commission,
		&op.CashBefore,
		&op.CashAfter,
		&op.DigitalBefore,
		&op.DigitalAfter,
		&op.CounterpartName,
		&op.CounterpartPhone,
		&op.Notes,
		&op.TransactionID,
		&op.CreatedAt,
		&op.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &op, nil
}
