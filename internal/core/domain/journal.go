package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies the business event a journal transaction records.
type TransactionKind string

const (
	KindSale       TransactionKind = "SALE"
	KindPurchase   TransactionKind = "PURCHASE"
	KindDeposit    TransactionKind = "DEPOSIT"
	KindWithdrawal TransactionKind = "WITHDRAWAL"
	KindTransfer   TransactionKind = "TRANSFER"
	KindCollection TransactionKind = "COLLECTION" // client settles a receivable
	KindPayment    TransactionKind = "PAYMENT"    // supplier payable settled
	KindCapital    TransactionKind = "CAPITAL"
	KindDividend   TransactionKind = "DIVIDEND"
	KindExpense    TransactionKind = "EXPENSE"
	KindReversal   TransactionKind = "REVERSAL"
	KindAdjustment TransactionKind = "ADJUSTMENT"
)

// JournalLine is one debit-or-credit movement against one account. Lines are
// written in balanced batches sharing a TransactionID and are never mutated
// in place; corrections are reversing transactions.
type JournalLine struct {
	LineID        string          `json:"lineID"`
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Kind          TransactionKind `json:"kind"`
	ServiceID     string          `json:"serviceID,omitempty"` // payment-service attribution, empty when not service related
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description"`
	AuditFields
}

// LineFilter narrows journal projections. Zero values mean "no filter".
type LineFilter struct {
	AccountCode string
	Kind        TransactionKind
	ServiceID   string
}

// Matches reports whether a line passes the filter.
func (f LineFilter) Matches(l JournalLine) bool {
	if f.AccountCode != "" && l.AccountCode != f.AccountCode {
		return false
	}
	if f.Kind != "" && l.Kind != f.Kind {
		return false
	}
	if f.ServiceID != "" && l.ServiceID != f.ServiceID {
		return false
	}
	return true
}
