package pgsql

import (
	"context"
	"fmt"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFixedAssetRepository struct {
	pool *pgxpool.Pool
}

// newPgxFixedAssetRepository creates a new repository for the asset register.
func newPgxFixedAssetRepository(pool *pgxpool.Pool) portsrepo.FixedAssetRepository {
	return &PgxFixedAssetRepository{pool: pool}
}

var _ portsrepo.FixedAssetRepository = (*PgxFixedAssetRepository)(nil)

const fixedAssetColumns = `asset_id, name, cost, useful_life_months, acquired_at, created_at, last_updated_at`

// SaveFixedAsset inserts an asset record.
func (r *PgxFixedAssetRepository) SaveFixedAsset(ctx context.Context, asset domain.FixedAsset) error {
	query := `
		INSERT INTO fixed_assets (` + fixedAssetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		asset.AssetID,
		asset.Name,
		asset.Cost,
		asset.UsefulLifeMonth,
		asset.AcquiredAt,
		asset.CreatedAt,
		asset.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save fixed asset %s: %w", asset.AssetID, err)
	}
	return nil
}

// ListFixedAssets returns the full asset register.
func (r *PgxFixedAssetRepository) ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	query := `
		SELECT ` + fixedAssetColumns + `
		FROM fixed_assets
		ORDER BY acquired_at ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.FixedAsset
	for rows.Next() {
		var a domain.FixedAsset
		err := rows.Scan(
			&a.AssetID,
			&a.Name,
			&a.Cost,
			&a.UsefulLifeMonth,
			&a.AcquiredAt,
			&a.CreatedAt,
			&a.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fixed assets: %w", err)
	}
	return assets, nil
}
