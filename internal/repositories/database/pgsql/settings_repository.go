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

type PgxSettingsRepository struct {
	pool *pgxpool.Pool
}

// newPgxSettingsRepository creates a new repository for the single settings
// record.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{pool: pool}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetSettings returns the settings record. The row is created at boot, so a
// missing row is a not-found condition rather than a default.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT currency_symbol, default_exchange_rate, default_transfer_fee, sales_tax_rate, income_tax_rate, fiscal_year_start_month, created_at, last_updated_at
		FROM settings
		WHERE id = 1;
	`
	var s domain.Settings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.CurrencySymbol,
		&s.DefaultExchangeRate,
		&s.DefaultTransferFee,
		&s.SalesTaxRate,
		&s.IncomeTaxRate,
		&s.FiscalYearStartMonth,
		&s.CreatedAt,
		&s.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &s, nil
}

// SaveSettings upserts the settings record.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	query := `
		INSERT INTO settings (id, currency_symbol, default_exchange_rate, default_transfer_fee, sales_tax_rate, income_tax_rate, fiscal_year_start_month, created_at, last_updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			currency_symbol = EXCLUDED.currency_symbol,
			default_exchange_rate = EXCLUDED.default_exchange_rate,
			default_transfer_fee = EXCLUDED.default_transfer_fee,
			sales_tax_rate = EXCLUDED.sales_tax_rate,
			income_tax_rate = EXCLUDED.income_tax_rate,
			fiscal_year_start_month = EXCLUDED.fiscal_year_start_month,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query,
		settings.CurrencySymbol,
		settings.DefaultExchangeRate,
		settings.DefaultTransferFee,
		settings.SalesTaxRate,
		settings.IncomeTaxRate,
		settings.FiscalYearStartMonth,
		settings.CreatedAt,
		settings.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
