package services

import (
	"context"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
)

// ReportingSvc builds the financial statements. All methods are pure
// projections over the journal for a period; none mutate state and all may
// be abandoned via ctx.
type ReportingSvc interface {
	TrialBalance(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error)
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error)
	RetainedEarnings(ctx context.Context, from, to time.Time) (*domain.RetainedEarningsReport, error)
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)
	TaxSummary(ctx context.Context, from, to time.Time) (*domain.TaxSummaryReport, error)
}
