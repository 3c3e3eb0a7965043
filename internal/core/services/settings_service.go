package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
)

type settingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new SettingsSvc.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvc {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings replaces the single settings record. Changes only affect
// future recordings and reports; nothing already journaled is touched.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	current, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	now := time.Now().UTC()
	settings := domain.Settings{
		CurrencySymbol:       req.CurrencySymbol,
		DefaultExchangeRate:  req.DefaultExchangeRate,
		DefaultTransferFee:   req.DefaultTransferFee,
		SalesTaxRate:         req.SalesTaxRate,
		IncomeTaxRate:        req.IncomeTaxRate,
		FiscalYearStartMonth: req.FiscalYearStartMonth,
		AuditFields:          domain.AuditFields{CreatedAt: current.CreatedAt, LastUpdatedAt: now},
	}
	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		logger.Error("Failed to save settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	logger.Info("Settings updated", slog.String("sales_tax_rate", settings.SalesTaxRate.String()))
	return &settings, nil
}
