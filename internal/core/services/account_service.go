package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
)

// accountService manages the chart of accounts. Accounts are never deleted,
// only deactivated, so historical journal lines always resolve.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountSvc.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvc {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

// CreateAccount adds a new account to the chart.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	nature := domain.AccountNature(req.Nature)
	if !nature.Valid() {
		return nil, fmt.Errorf("%w: unknown account nature %q", apperrors.ErrValidation, req.Nature)
	}

	if existing, err := s.accountRepo.FindAccountByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check account code %s: %w", req.Code, err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		Code:        req.Code,
		Name:        req.Name,
		Nature:      nature,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_code", req.Code))
		return nil, fmt.Errorf("failed to save account %s: %w", req.Code, err)
	}

	logger.Info("Account created", slog.String("account_code", account.Code), slog.String("nature", string(account.Nature)))
	return &account, nil
}

// GetAccountByCode fetches one account.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: code %s", ErrAccountNotFound, code)
		}
		return nil, fmt.Errorf("failed to fetch account %s: %w", code, err)
	}
	return account, nil
}

// ListAccounts returns the full chart.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount changes the mutable fields of an account. Code and nature are
// immutable once journal lines may reference them.
func (s *accountService) UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update account %s: %w", code, err)
	}
	return account, nil
}

// DeactivateAccount marks an account inactive so new lines are rejected while
// existing lines keep resolving.
func (s *accountService) DeactivateAccount(ctx context.Context, code string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.GetAccountByCode(ctx, code)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return nil
	}

	account.IsActive = false
	account.LastUpdatedAt = time.Now().UTC()
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", code, err)
	}

	logger.Info("Account deactivated", slog.String("account_code", code))
	return nil
}
