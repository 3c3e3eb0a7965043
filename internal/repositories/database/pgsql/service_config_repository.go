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

type PgxServiceConfigRepository struct {
	pool *pgxpool.Pool
}

// newPgxServiceConfigRepository creates a new repository for payment-service
// policy records.
func newPgxServiceConfigRepository(pool *pgxpool.Pool) portsrepo.ServiceConfigRepository {
	return &PgxServiceConfigRepository{pool: pool}
}

var _ portsrepo.ServiceConfigRepository = (*PgxServiceConfigRepository)(nil)

const serviceConfigColumns = `service_id, label, is_own_service, default_fee_percent, default_commission_percent, created_at, last_updated_at`

// UpsertServiceConfig inserts or replaces the policy record of a service.
func (r *PgxServiceConfigRepository) UpsertServiceConfig(ctx context.Context, cfg domain.ServiceConfig) error {
	query := `
		INSERT INTO service_configs (` + serviceConfigColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (service_id) DO UPDATE SET
			label = EXCLUDED.label,
			is_own_service = EXCLUDED.is_own_service,
			default_fee_percent = EXCLUDED.default_fee_percent,
			default_commission_percent = EXCLUDED.default_commission_percent,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query,
		cfg.ServiceID,
		cfg.Label,
		cfg.IsOwnService,
		cfg.DefaultFeePercent,
		cfg.DefaultCommissionPercent,
		cfg.CreatedAt,
		cfg.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert service config %s: %w", cfg.ServiceID, err)
	}
	return nil
}

// FindServiceConfig retrieves the policy record of one service.
func (r *PgxServiceConfigRepository) FindServiceConfig(ctx context.Context, serviceID string) (*domain.ServiceConfig, error) {
	query := `
		SELECT ` + serviceConfigColumns + `
		FROM service_configs
		WHERE service_id = $1;
	`
	var cfg domain.ServiceConfig
	err := r.pool.QueryRow(ctx, query, serviceID).Scan(
		&cfg.ServiceID,
		&cfg.Label,
		&cfg.IsOwnService,
		&cfg.DefaultFeePercent,
		&cfg.DefaultCommissionPercent,
		&cfg.CreatedAt,
		&cfg.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service config %s: %w", serviceID, err)
	}
	return &cfg, nil
}

// ListServiceConfigs returns every stored policy record.
func (r *PgxServiceConfigRepository) ListServiceConfigs(ctx context.Context) ([]domain.ServiceConfig, error) {
	query := `
		SELECT ` + serviceConfigColumns + `
		FROM service_configs
		ORDER BY service_id ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query service configs: %w", err)
	}
	defer rows.Close()

	var configs []domain.ServiceConfig
	for rows.Next() {
		var cfg domain.ServiceConfig
		err := rows.Scan(
			&cfg.ServiceID,
			&cfg.Label,
			&cfg.IsOwnService,
			&cfg.DefaultFeePercent,
			&cfg.DefaultCommissionPercent,
			&cfg.CreatedAt,
			&cfg.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service config: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service configs: %w", err)
	}
	return configs, nil
}
