package services

import (
	"context"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
)

// AssetSvc keeps the fixed-asset register. Registering an asset journals the
// purchase; the depreciation itself stays a report-time adjustment.
type AssetSvc interface {
	RegisterFixedAsset(ctx context.Context, req dto.CreateFixedAssetRequest) (*domain.FixedAsset, error)
	ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error)
}
