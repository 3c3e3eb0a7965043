package domain

import "github.com/shopspring/decimal"

// Settings are the business-wide knobs consumed by the reporting engine and
// the service balance model. They are read-only inputs at record/report time.
type Settings struct {
	CurrencySymbol       string          `json:"currencySymbol"`
	DefaultExchangeRate  decimal.Decimal `json:"defaultExchangeRate"`
	DefaultTransferFee   decimal.Decimal `json:"defaultTransferFee"`
	SalesTaxRate         decimal.Decimal `json:"salesTaxRate"`  // applied to taxable goods and services
	IncomeTaxRate        decimal.Decimal `json:"incomeTaxRate"` // P&L estimate only, never posted
	FiscalYearStartMonth int             `json:"fiscalYearStartMonth"`
	AuditFields
}
