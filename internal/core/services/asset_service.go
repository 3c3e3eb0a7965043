package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
)

type assetService struct {
	journalSvc portssvc.JournalSvc
	assetRepo  portsrepo.FixedAssetRepository
}

// NewAssetService creates a new AssetSvc.
func NewAssetService(journalSvc portssvc.JournalSvc, assetRepo portsrepo.FixedAssetRepository) portssvc.AssetSvc {
	return &assetService{journalSvc: journalSvc, assetRepo: assetRepo}
}

var _ portssvc.AssetSvc = (*assetService)(nil)

// RegisterFixedAsset books the purchase against cash and adds the asset to
// the register feeding the amortization adjustment.
func (s *assetService) RegisterFixedAsset(ctx context.Context, req dto.CreateFixedAssetRequest) (*domain.FixedAsset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	description := fmt.Sprintf("fixed asset purchase: %s", req.Name)
	txnID, err := s.journalSvc.Record(ctx, dto.RecordTransactionRequest{
		Lines: []dto.JournalLineInput{
			{
				Date:        req.AcquiredAt,
				Kind:        string(domain.KindPurchase),
				AccountCode: domain.AccountFixedAssets,
				AccountName: "Fixed assets",
				Debit:       req.Cost,
				Description: description,
			},
			{
				Date:        req.AcquiredAt,
				Kind:        string(domain.KindPurchase),
				AccountCode: domain.AccountCash,
				AccountName: "Cash on hand",
				Credit:      req.Cost,
				Description: description,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	asset := domain.FixedAsset{
		AssetID:         uuid.NewString(),
		Name:            req.Name,
		Cost:            req.Cost,
		UsefulLifeMonth: req.UsefulLifeMonths,
		AcquiredAt:      req.AcquiredAt,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.assetRepo.SaveFixedAsset(ctx, asset); err != nil {
		logger.Error("Failed to save fixed asset", slog.String("error", err.Error()), slog.String("transaction_id", txnID))
		return nil, fmt.Errorf("failed to save fixed asset: %w", err)
	}

	logger.Info("Fixed asset registered",
		slog.String("asset_id", asset.AssetID),
		slog.String("cost", asset.Cost.String()),
		slog.String("transaction_id", txnID))
	return &asset, nil
}

// ListFixedAssets returns the asset register.
func (s *assetService) ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	assets, err := s.assetRepo.ListFixedAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed assets: %w", err)
	}
	return assets, nil
}
