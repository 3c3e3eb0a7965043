package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest replaces the business-wide settings record.
type UpdateSettingsRequest struct {
	CurrencySymbol       string          `json:"currencySymbol" binding:"required"`
	DefaultExchangeRate  decimal.Decimal `json:"defaultExchangeRate" binding:"dgt0"`
	DefaultTransferFee   decimal.Decimal `json:"defaultTransferFee" binding:"dgte0"`
	SalesTaxRate         decimal.Decimal `json:"salesTaxRate" binding:"dgte0"`
	IncomeTaxRate        decimal.Decimal `json:"incomeTaxRate" binding:"dgte0"`
	FiscalYearStartMonth int             `json:"fiscalYearStartMonth" binding:"required,min=1,max=12"`
}
