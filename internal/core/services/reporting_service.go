package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// balanceEpsilon is the tolerance for the balance-sheet self-test.
var balanceEpsilon = decimal.NewFromFloat(0.01)

// reportingService builds the financial statements as pure projections over
// the journal. The amortization figure is a simulated adjustment computed
// from the asset register at report time; it is never posted.
type reportingService struct {
	ledgerSvc    portssvc.LedgerSvc
	accountRepo  portsrepo.AccountRepository
	assetRepo    portsrepo.FixedAssetRepository
	settingsRepo portsrepo.SettingsRepository
}

// NewReportingService creates a new ReportingSvc.
func NewReportingService(
	ledgerSvc portssvc.LedgerSvc,
	accountRepo portsrepo.AccountRepository,
	assetRepo portsrepo.FixedAssetRepository,
	settingsRepo portsrepo.SettingsRepository,
) portssvc.ReportingSvc {
	return &reportingService{
		ledgerSvc:    ledgerSvc,
		accountRepo:  accountRepo,
		assetRepo:    assetRepo,
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// TrialBalance delegates to the balance deriver.
func (s *reportingService) TrialBalance(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	return s.ledgerSvc.TrialBalance(ctx, from, to)
}

// accountNatures maps account codes to their natures from the chart.
func (s *reportingService) accountNatures(ctx context.Context) (map[string]domain.AccountNature, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	natures := make(map[string]domain.AccountNature, len(accounts))
	for _, a := range accounts {
		natures[a.Code] = a.Nature
	}
	return natures, nil
}

// ProfitAndLoss sums revenue against expenses for the period, breaks out the
// cost of goods sold, applies the simulated amortization adjustment and
// estimates income tax on the result.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.ledgerSvc.TrialBalance(ctx, from, to)
	if err != nil {
		return nil, err
	}
	natures, err := s.accountNatures(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	report := &domain.PAndLReport{
		From:          from,
		To:            to,
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		COGS:          decimal.Zero,
	}
	for _, row := range rows {
		nature, ok := natures[row.AccountCode]
		if !ok {
			logger.Warn("Journal line references an account missing from the chart", slog.String("account_code", row.AccountCode))
			continue
		}
		net := accounting.SignedBalance(nature, row.Debit, row.Credit)
		switch nature {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, domain.AccountAmount{AccountCode: row.AccountCode, Name: row.AccountName, NetAmount: net})
			report.TotalRevenue = report.TotalRevenue.Add(net)
		case domain.Expense:
			report.Expenses = append(report.Expenses, domain.AccountAmount{AccountCode: row.AccountCode, Name: row.AccountName, NetAmount: net})
			report.TotalExpenses = report.TotalExpenses.Add(net)
			if row.AccountCode == domain.AccountCOGS {
				report.COGS = report.COGS.Add(net)
			}
		}
	}

	amortization, err := s.periodAmortization(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report.Amortization = amortization
	report.NetBeforeTax = report.TotalRevenue.Sub(report.TotalExpenses).Sub(amortization)
	report.IncomeTax = decimal.Zero
	if report.NetBeforeTax.IsPositive() {
		report.IncomeTax = report.NetBeforeTax.Mul(settings.IncomeTaxRate).Round(2)
	}
	report.NetIncome = report.NetBeforeTax.Sub(report.IncomeTax)
	return report, nil
}

// RetainedEarnings rolls the retained earnings account forward over the
// period: closing = opening + net income − dividends paid.
func (s *reportingService) RetainedEarnings(ctx context.Context, from, to time.Time) (*domain.RetainedEarningsReport, error) {
	opening, err := s.ledgerSvc.AccountBalance(ctx, domain.AccountRetainedEarnings, from.Add(-time.Nanosecond))
	if err != nil {
		return nil, err
	}

	pnl, err := s.ProfitAndLoss(ctx, from, to)
	if err != nil {
		return nil, err
	}

	dividends, err := s.dividendsPaid(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.RetainedEarningsReport{
		From:      from,
		To:        to,
		Opening:   opening,
		NetIncome: pnl.NetIncome,
		Dividends: dividends,
		Closing:   opening.Add(pnl.NetIncome).Sub(dividends),
	}, nil
}

// dividendsPaid totals the equity-side debits of dividend transactions in
// the period.
func (s *reportingService) dividendsPaid(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	lines, err := s.ledgerSvc.Entries(ctx, from, to, domain.LineFilter{Kind: domain.KindDividend})
	if err != nil {
		return decimal.Zero, err
	}
	natures, err := s.accountNatures(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, l := range lines {
		if natures[l.AccountCode] == domain.Equity {
			total = total.Add(l.Debit).Sub(l.Credit)
		}
	}
	return total, nil
}

// BalanceSheet aggregates the journal from inception to asOf, applies the
// sign convention per nature, folds unposted current earnings into equity
// and applies the amortization adjustment symmetrically to both sides.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	rows, err := s.ledgerSvc.TrialBalance(ctx, time.Time{}, asOf)
	if err != nil {
		return nil, err
	}
	natures, err := s.accountNatures(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
		CurrentEarnings:  decimal.Zero,
	}
	for _, row := range rows {
		nature, ok := natures[row.AccountCode]
		if !ok {
			continue
		}
		net := accounting.SignedBalance(nature, row.Debit, row.Credit)
		amount := domain.AccountAmount{AccountCode: row.AccountCode, Name: row.AccountName, NetAmount: net}
		switch nature {
		case domain.Asset:
			report.Assets = append(report.Assets, amount)
			report.TotalAssets = report.TotalAssets.Add(net)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, amount)
			report.TotalLiabilities = report.TotalLiabilities.Add(net)
		case domain.Equity:
			report.Equity = append(report.Equity, amount)
			report.TotalEquity = report.TotalEquity.Add(net)
		case domain.Revenue:
			report.CurrentEarnings = report.CurrentEarnings.Add(net)
		case domain.Expense:
			report.CurrentEarnings = report.CurrentEarnings.Sub(net)
		}
	}

	accumulated, err := s.accumulatedAmortization(ctx, asOf)
	if err != nil {
		return nil, err
	}
	report.AccumulatedAmortization = accumulated
	report.CurrentEarnings = report.CurrentEarnings.Sub(accumulated)
	report.TotalAssets = report.TotalAssets.Sub(accumulated)
	report.TotalEquity = report.TotalEquity.Add(report.CurrentEarnings)

	report.Discrepancy = report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
	report.Balanced = report.Discrepancy.Abs().LessThan(balanceEpsilon)
	return report, nil
}

// TaxSummary groups taxable revenue by originating account and applies the
// active rate per bucket.
func (s *reportingService) TaxSummary(ctx context.Context, from, to time.Time) (*domain.TaxSummaryReport, error) {
	rows, err := s.ledgerSvc.TrialBalance(ctx, from, to)
	if err != nil {
		return nil, err
	}
	natures, err := s.accountNatures(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	report := &domain.TaxSummaryReport{
		From:      from,
		To:        to,
		TotalBase: decimal.Zero,
		TotalTax:  decimal.Zero,
	}
	for _, row := range rows {
		if natures[row.AccountCode] != domain.Revenue {
			continue
		}
		base := row.Credit.Sub(row.Debit)
		if base.IsZero() {
			continue
		}
		tax := base.Mul(settings.SalesTaxRate).Round(2)
		report.Buckets = append(report.Buckets, domain.TaxBucket{
			AccountCode: row.AccountCode,
			Name:        row.AccountName,
			Base:        base,
			Rate:        settings.SalesTaxRate,
			Tax:         tax,
		})
		report.TotalBase = report.TotalBase.Add(base)
		report.TotalTax = report.TotalTax.Add(tax)
	}
	return report, nil
}

// periodAmortization is the straight-line depreciation accrued by the asset
// register during the period.
func (s *reportingService) periodAmortization(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	assets, err := s.assetRepo.ListFixedAssets(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list fixed assets: %w", err)
	}
	total := decimal.Zero
	for _, asset := range assets {
		if asset.UsefulLifeMonth <= 0 {
			continue
		}
		monthly := asset.Cost.DivRound(decimal.NewFromInt(asset.UsefulLifeMonth), 2)
		inService := monthsBetween(asset.AcquiredAt, minTime(to, asset.AcquiredAt.AddDate(0, int(asset.UsefulLifeMonth), 0)))
		before := monthsBetween(asset.AcquiredAt, from)
		months := inService - before
		if months > 0 {
			total = total.Add(monthly.Mul(decimal.NewFromInt(months)))
		}
	}
	return total, nil
}

// accumulatedAmortization is the depreciation accrued from acquisition to
// asOf, capped at each asset's cost.
func (s *reportingService) accumulatedAmortization(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	assets, err := s.assetRepo.ListFixedAssets(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list fixed assets: %w", err)
	}
	total := decimal.Zero
	for _, asset := range assets {
		if asset.UsefulLifeMonth <= 0 {
			continue
		}
		monthly := asset.Cost.DivRound(decimal.NewFromInt(asset.UsefulLifeMonth), 2)
		months := monthsBetween(asset.AcquiredAt, asOf)
		if months > asset.UsefulLifeMonth {
			months = asset.UsefulLifeMonth
		}
		if months <= 0 {
			continue
		}
		accrued := monthly.Mul(decimal.NewFromInt(months))
		if accrued.GreaterThan(asset.Cost) {
			accrued = asset.Cost
		}
		total = total.Add(accrued)
	}
	return total, nil
}

// monthsBetween counts whole months elapsed from a to b.
func monthsBetween(a, b time.Time) int64 {
	if !b.After(a) {
		return 0
	}
	months := int64(b.Year()-a.Year())*12 + int64(b.Month()) - int64(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
