package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordOperationRequest records a deposit, withdrawal or transfer against a
// payment service.
type RecordOperationRequest struct {
	Kind             string          `json:"kind" binding:"required,oneof=DEPOSIT WITHDRAWAL TRANSFER"`
	ServiceID        string          `json:"serviceID" binding:"required"`
	Date             time.Time       `json:"date" binding:"required"`
	Principal        decimal.Decimal `json:"principal" binding:"dgte0"`
	Fees             decimal.Decimal `json:"fees" binding:"dgte0"`
	Commission       decimal.Decimal `json:"commission" binding:"dgte0"`
	CounterpartName  string          `json:"counterpartName"`
	CounterpartPhone string          `json:"counterpartPhone"`
	Notes            string          `json:"notes"`
}

// RecordTransferRequest records a money-transfer job for a client. The
// exchange rate is fixed for this transfer; zero means the configured
// default applies.
type RecordTransferRequest struct {
	ServiceID     string          `json:"serviceID" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"dgt0"`
	Fees          decimal.Decimal `json:"fees" binding:"dgte0"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate" binding:"dgte0"`
	SenderName    string          `json:"senderName"`
	ReceiverName  string          `json:"receiverName"`
	ReceiverPhone string          `json:"receiverPhone"`
	Notes         string          `json:"notes"`
}

// ConfigureServiceRequest creates or updates a service policy record.
type ConfigureServiceRequest struct {
	ServiceID                string          `json:"serviceID" binding:"required"`
	Label                    string          `json:"label"`
	IsOwnService             bool            `json:"isOwnService"`
	DefaultFeePercent        decimal.Decimal `json:"defaultFeePercent" binding:"dgte0"`
	DefaultCommissionPercent decimal.Decimal `json:"defaultCommissionPercent" binding:"dgte0"`
}
