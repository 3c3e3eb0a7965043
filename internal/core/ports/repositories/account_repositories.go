package repositories

import (
	"context"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
)

// AccountRepository persists the chart of accounts, keyed by account code.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
}
