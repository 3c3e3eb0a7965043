package repositories

import (
	"context"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
)

// ServiceConfigRepository persists per-payment-service policy records.
type ServiceConfigRepository interface {
	UpsertServiceConfig(ctx context.Context, cfg domain.ServiceConfig) error
	// FindServiceConfig returns ErrNotFound for services never configured;
	// callers fall back to domain.DefaultServiceConfig.
	FindServiceConfig(ctx context.Context, serviceID string) (*domain.ServiceConfig, error)
	ListServiceConfigs(ctx context.Context) ([]domain.ServiceConfig, error)
}

// PartyRepository persists clients and suppliers with their open balances.
type PartyRepository interface {
	SaveParty(ctx context.Context, party domain.ThirdParty) error
	FindPartyByID(ctx context.Context, partyID string) (*domain.ThirdParty, error)
	// ListParties filters by role; empty role lists everyone.
	ListParties(ctx context.Context, role domain.PartyRole) ([]domain.ThirdParty, error)
	UpdateParty(ctx context.Context, party domain.ThirdParty) error
	DeleteParty(ctx context.Context, partyID string) error
}

// ProductRepository persists stocked goods.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// SaleRepository persists sale source records.
type SaleRepository interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
	ListSales(ctx context.Context, from, to time.Time) ([]domain.Sale, error)
}

// TransferRepository persists money-transfer jobs.
type TransferRepository interface {
	SaveTransfer(ctx context.Context, transfer domain.Transfer) error
	ListTransfers(ctx context.Context, from, to time.Time) ([]domain.Transfer, error)
}

// FixedAssetRepository persists the asset register feeding the amortization
// adjustment.
type FixedAssetRepository interface {
	SaveFixedAsset(ctx context.Context, asset domain.FixedAsset) error
	ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error)
}

// SettingsRepository persists the single business-wide settings record.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
