package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// PAndLReport is the full profit-and-loss breakdown for a period, not just
// the net figure. Amortization is a simulated, unposted adjustment and the
// income tax is an estimate.
type PAndLReport struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	COGS          decimal.Decimal `json:"cogs"` // included in TotalExpenses, broken out
	Amortization  decimal.Decimal `json:"amortization"`
	NetBeforeTax  decimal.Decimal `json:"netBeforeTax"`
	IncomeTax     decimal.Decimal `json:"incomeTax"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// RetainedEarningsReport is the roll-forward of the retained earnings account
// over a period.
type RetainedEarningsReport struct {
	From      time.Time       `json:"from"`
	To        time.Time       `json:"to"`
	Opening   decimal.Decimal `json:"opening"`
	NetIncome decimal.Decimal `json:"netIncome"`
	Dividends decimal.Decimal `json:"dividends"`
	Closing   decimal.Decimal `json:"closing"`
}

// BalanceSheetReport is the statement of financial position as of a date.
// Balanced is the primary correctness self-test exposed to callers.
type BalanceSheetReport struct {
	AsOf                    time.Time       `json:"asOf"`
	Assets                  []AccountAmount `json:"assets"`
	Liabilities             []AccountAmount `json:"liabilities"`
	Equity                  []AccountAmount `json:"equity"`
	TotalAssets             decimal.Decimal `json:"totalAssets"`
	TotalLiabilities        decimal.Decimal `json:"totalLiabilities"`
	TotalEquity             decimal.Decimal `json:"totalEquity"`
	CurrentEarnings         decimal.Decimal `json:"currentEarnings"`         // revenue minus expenses to date, folded into equity
	AccumulatedAmortization decimal.Decimal `json:"accumulatedAmortization"` // unposted adjustment, applied to both sides
	Balanced                bool            `json:"balanced"`
	Discrepancy             decimal.Decimal `json:"discrepancy"`
}

// TaxBucket is one taxable revenue grouping of a tax summary.
type TaxBucket struct {
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Base        decimal.Decimal `json:"base"`
	Rate        decimal.Decimal `json:"rate"`
	Tax         decimal.Decimal `json:"tax"`
}

// TaxSummaryReport groups taxable revenue by originating account and applies
// the active tax rate per bucket.
type TaxSummaryReport struct {
	From      time.Time       `json:"from"`
	To        time.Time       `json:"to"`
	Buckets   []TaxBucket     `json:"buckets"`
	TotalBase decimal.Decimal `json:"totalBase"`
	TotalTax  decimal.Decimal `json:"totalTax"`
}
