package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const journalLineColumns = `line_id, transaction_id, date, kind, service_id, account_code, account_name, debit, credit, description, created_at, last_updated_at`

// SaveTransaction appends a balanced batch of lines inside a DB transaction
// so the lines become visible together or not at all.
func (r *PgxJournalRepository) SaveTransaction(ctx context.Context, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO journal_lines (` + journalLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(query,
			l.LineID,
			l.TransactionID,
			l.Date,
			l.Kind,
			l.ServiceID,
			l.AccountCode,
			l.AccountName,
			l.Debit,
			l.Credit,
			l.Description,
			l.CreatedAt,
			l.LastUpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute journal line batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindLinesInRange returns lines with from <= date <= to passing the filter,
// ordered by date then creation order.
func (r *PgxJournalRepository) FindLinesInRange(ctx context.Context, from, to time.Time, filter domain.LineFilter) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + journalLineColumns + `
		FROM journal_lines
		WHERE date >= $1 AND date <= $2
	`
	args := []interface{}{from, to}
	if filter.AccountCode != "" {
		args = append(args, filter.AccountCode)
		query += " AND account_code = $" + strconv.Itoa(len(args))
	}
	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		query += " AND kind = $" + strconv.Itoa(len(args))
	}
	if filter.ServiceID != "" {
		args = append(args, filter.ServiceID)
		query += " AND service_id = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY date ASC, created_at ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	return scanJournalLines(rows)
}

// FindLinesByTransactionID returns all lines of one transaction.
func (r *PgxJournalRepository) FindLinesByTransactionID(ctx context.Context, txnID string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + journalLineColumns + `
		FROM journal_lines
		WHERE transaction_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, txnID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for transaction %s: %w", txnID, err)
	}
	defer rows.Close()

	return scanJournalLines(rows)
}

func scanJournalLines(rows pgx.Rows) ([]domain.JournalLine, error) {
	var lines []domain.JournalLine
	for rows.Next() {
		var l domain.JournalLine
		err := rows.Scan(
			&l.LineID,
			&l.TransactionID,
			&l.Date,
			&l.Kind,
			&l.ServiceID,
			&l.AccountCode,
			&l.AccountName,
			&l.Debit,
			&l.Credit,
			&l.Description,
			&l.CreatedAt,
			&l.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal lines: %w", err)
	}
	return lines, nil
}
