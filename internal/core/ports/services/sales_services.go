package services

import (
	"context"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
)

// SalesSvc records sales, restocking and third-party settlements, emitting
// the matching journal lines through the recorder.
type SalesSvc interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.Sale, error)
	RecordRestock(ctx context.Context, req dto.RestockRequest) (*domain.Product, error)
	// RecordSettlement is a client collection or a supplier payment,
	// depending on the party's role.
	RecordSettlement(ctx context.Context, req dto.SettlementRequest) (*domain.ThirdParty, error)
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListSales(ctx context.Context, from, to time.Time) ([]domain.Sale, error)
	CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.ThirdParty, error)
	ListParties(ctx context.Context, role domain.PartyRole) ([]domain.ThirdParty, error)
}

// AccountSvc manages the chart of accounts.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, code string) error
}

// SettingsSvc exposes the business-wide settings record.
type SettingsSvc interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
