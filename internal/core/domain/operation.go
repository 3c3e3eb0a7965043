package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationKind is the type of a payment-service operation.
type OperationKind string

const (
	OpDeposit    OperationKind = "DEPOSIT"
	OpWithdrawal OperationKind = "WITHDRAWAL"
	OpTransfer   OperationKind = "TRANSFER"
)

// Operation is a recorded deposit, withdrawal or transfer against a payment
// service. The before/after pool values are snapshots computed at write time
// for audit display; the journal remains the authority and snapshots are
// reconciled against it on read.
type Operation struct {
	OperationID      string          `json:"operationID"`
	Number           int64           `json:"number"` // monotonic per store
	Kind             OperationKind   `json:"kind"`
	ServiceID        string          `json:"serviceID"`
	Date             time.Time       `json:"date"`
	Principal        decimal.Decimal `json:"principal"`
	Fees             decimal.Decimal `json:"fees"`
	Commission       decimal.Decimal `json:"commission"`
	CashBefore       decimal.Decimal `json:"cashBefore"`
	CashAfter        decimal.Decimal `json:"cashAfter"`
	DigitalBefore    decimal.Decimal `json:"digitalBefore"`
	DigitalAfter     decimal.Decimal `json:"digitalAfter"`
	CounterpartName  string          `json:"counterpartName"`
	CounterpartPhone string          `json:"counterpartPhone"`
	Notes            string          `json:"notes"`
	TransactionID    string          `json:"transactionID"` // journal transaction backing this operation
	AuditFields
}

// PoolBalances is the cash/digital position of one payment service.
type PoolBalances struct {
	ServiceID string          `json:"serviceID"`
	Cash      decimal.Decimal `json:"cash"`
	Digital   decimal.Decimal `json:"digital"`
}

// ReconciliationReport compares the latest operation snapshot of a service
// with the position freshly derived from the journal.
type ReconciliationReport struct {
	ServiceID       string          `json:"serviceID"`
	OperationID     string          `json:"operationID,omitempty"`
	SnapshotCash    decimal.Decimal `json:"snapshotCash"`
	SnapshotDigital decimal.Decimal `json:"snapshotDigital"`
	DerivedCash     decimal.Decimal `json:"derivedCash"`
	DerivedDigital  decimal.Decimal `json:"derivedDigital"`
	CashDelta       decimal.Decimal `json:"cashDelta"`
	DigitalDelta    decimal.Decimal `json:"digitalDelta"`
	InAgreement     bool            `json:"inAgreement"`
}
