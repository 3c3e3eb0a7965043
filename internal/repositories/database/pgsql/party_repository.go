package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartyRepository struct {
	pool *pgxpool.Pool
}

// newPgxPartyRepository creates a new repository for clients and suppliers.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepository {
	return &PgxPartyRepository{pool: pool}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, name, role, phone, balance, created_at, last_updated_at`

// SaveParty inserts a new third party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.ThirdParty) error {
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		party.PartyID,
		party.Name,
		party.Role,
		party.Phone,
		party.Balance,
		party.CreatedAt,
		party.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save party %s: %w", party.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves one third party.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.ThirdParty, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE party_id = $1;
	`
	var p domain.ThirdParty
	err := r.pool.QueryRow(ctx, query, partyID).Scan(
		&p.PartyID,
		&p.Name,
		&p.Role,
		&p.Phone,
		&p.Balance,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}
	return &p, nil
}

// ListParties filters by role; empty role lists everyone.
func (r *PgxPartyRepository) ListParties(ctx context.Context, role domain.PartyRole) ([]domain.ThirdParty, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE ($1 = '' OR role = $1)
		ORDER BY name ASC;
	`
	rows, err := r.pool.Query(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	var parties []domain.ThirdParty
	for rows.Next() {
		var p domain.ThirdParty
		err := rows.Scan(
			&p.PartyID,
			&p.Name,
			&p.Role,
			&p.Phone,
			&p.Balance,
			&p.CreatedAt,
			&p.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parties: %w", err)
	}
	return parties, nil
}

// UpdateParty updates the mutable fields of a third party.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.ThirdParty) error {
	query := `
		UPDATE parties
		SET name = $2, phone = $3, balance = $4, last_updated_at = $5
		WHERE party_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		party.PartyID,
		party.Name,
		party.Phone,
		party.Balance,
		party.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", party.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParty removes a third party record.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
