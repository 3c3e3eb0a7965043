package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerService derives balances from the journal. It holds no state and
// never caches: every call re-scans the requested range.
type ledgerService struct {
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewLedgerService creates a new LedgerSvc.
func NewLedgerService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.LedgerSvc {
	return &ledgerService{journalRepo: journalRepo, accountRepo: accountRepo}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// TrialBalance makes a single pass over the lines in range, accumulating
// debit/credit sums per account code. The account name is taken from the
// first line seen for the code.
func (s *ledgerService) TrialBalance(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	lines, err := s.journalRepo.FindLinesInRange(ctx, from, to, domain.LineFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal for trial balance: %w", err)
	}

	totals := make(map[string]*domain.TrialBalanceRow)
	for _, l := range lines {
		row, ok := totals[l.AccountCode]
		if !ok {
			row = &domain.TrialBalanceRow{
				AccountCode: l.AccountCode,
				AccountName: l.AccountName,
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
			}
			totals[l.AccountCode] = row
		}
		row.Debit = row.Debit.Add(l.Debit)
		row.Credit = row.Credit.Add(l.Credit)
	}

	rows := make([]domain.TrialBalanceRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AccountCode < rows[j].AccountCode })
	return rows, nil
}

// Entries returns the filtered projection of the journal, ordered by date
// then creation order.
func (s *ledgerService) Entries(ctx context.Context, from, to time.Time, filter domain.LineFilter) ([]domain.JournalLine, error) {
	lines, err := s.journalRepo.FindLinesInRange(ctx, from, to, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal entries: %w", err)
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].Date.Equal(lines[j].Date) {
			return lines[i].Date.Before(lines[j].Date)
		}
		return lines[i].CreatedAt.Before(lines[j].CreatedAt)
	})
	return lines, nil
}

// AccountBalance is the natural-sign balance of one account up to asOf.
func (s *ledgerService) AccountBalance(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: code %s", ErrAccountNotFound, accountCode)
		}
		return decimal.Zero, fmt.Errorf("failed to fetch account %s: %w", accountCode, err)
	}

	lines, err := s.journalRepo.FindLinesInRange(ctx, time.Time{}, asOf, domain.LineFilter{AccountCode: accountCode})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to scan journal for account %s: %w", accountCode, err)
	}
	debits, credits := accounting.SumSides(lines)
	return accounting.SignedBalance(account.Nature, debits, credits), nil
}

// ServicePools derives the cash/digital position of a payment service from
// the journal over all time, filtering on the explicit service attribution.
func (s *ledgerService) ServicePools(ctx context.Context, serviceID string) (domain.PoolBalances, error) {
	lines, err := s.journalRepo.FindLinesInRange(ctx, time.Time{}, farFuture(), domain.LineFilter{ServiceID: serviceID})
	if err != nil {
		return domain.PoolBalances{}, fmt.Errorf("failed to scan journal for service %s: %w", serviceID, err)
	}

	pools := domain.PoolBalances{ServiceID: serviceID, Cash: decimal.Zero, Digital: decimal.Zero}
	for _, l := range lines {
		switch l.AccountCode {
		case domain.AccountCash:
			pools.Cash = pools.Cash.Add(l.Debit).Sub(l.Credit)
		case domain.AccountDigital:
			pools.Digital = pools.Digital.Add(l.Debit).Sub(l.Credit)
		}
	}
	return pools, nil
}

// farFuture is the open upper bound for all-time scans.
func farFuture() time.Time {
	return time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
}
