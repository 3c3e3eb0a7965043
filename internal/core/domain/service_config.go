package domain

import "github.com/shopspring/decimal"

// ServiceConfig is the per-payment-service policy record. A service without a
// stored config is treated as brokered with zero default rates.
type ServiceConfig struct {
	ServiceID                string          `json:"serviceID"`
	Label                    string          `json:"label"`
	IsOwnService             bool            `json:"isOwnService"`
	DefaultFeePercent        decimal.Decimal `json:"defaultFeePercent"`
	DefaultCommissionPercent decimal.Decimal `json:"defaultCommissionPercent"`
	AuditFields
}

// DefaultServiceConfig is the policy applied to services never configured:
// brokered pass-through with no default rates.
func DefaultServiceConfig(serviceID string) ServiceConfig {
	return ServiceConfig{
		ServiceID:    serviceID,
		Label:        serviceID,
		IsOwnService: false,
	}
}
