package services

import (
	"context"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc is the balance deriver: pure read-side aggregation over the
// journal. Every call re-scans; nothing is cached or mutated.
type LedgerSvc interface {
	// TrialBalance aggregates per-account debit/credit totals over the
	// range, one row per account with at least one line, sorted by code.
	TrialBalance(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error)
	// Entries is the filtered journal projection, ordered by date then
	// creation order.
	Entries(ctx context.Context, from, to time.Time, filter domain.LineFilter) ([]domain.JournalLine, error)
	// AccountBalance is the natural-sign balance of one account as of a date.
	AccountBalance(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, error)
	// ServicePools derives the cash/digital position of a payment service
	// from the journal over all time.
	ServicePools(ctx context.Context, serviceID string) (domain.PoolBalances, error)
}
