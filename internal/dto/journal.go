package dto

import (
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineInput is one line of a transaction to record. Exactly one of
// debit/credit must be positive; the recorder enforces this.
type JournalLineInput struct {
	Date        time.Time       `json:"date" binding:"required"`
	Kind        string          `json:"kind" binding:"required"`
	ServiceID   string          `json:"serviceID"`
	AccountCode string          `json:"accountCode" binding:"required"`
	AccountName string          `json:"accountName" binding:"required"`
	Debit       decimal.Decimal `json:"debit" binding:"dgte0"`
	Credit      decimal.Decimal `json:"credit" binding:"dgte0"`
	Description string          `json:"description"`
}

// RecordTransactionRequest is a balanced batch of lines for one business event.
type RecordTransactionRequest struct {
	Lines []JournalLineInput `json:"lines" binding:"required,min=1,dive"`
}

// ToDomainLine converts an input line; ids and audit fields are assigned by
// the recorder.
func (in JournalLineInput) ToDomainLine() domain.JournalLine {
	return domain.JournalLine{
		Date:        in.Date,
		Kind:        domain.TransactionKind(in.Kind),
		ServiceID:   in.ServiceID,
		AccountCode: in.AccountCode,
		AccountName: in.AccountName,
		Debit:       in.Debit,
		Credit:      in.Credit,
		Description: in.Description,
	}
}

// JournalLineResponse is the stable line projection handed to renderers.
type JournalLineResponse struct {
	LineID        string          `json:"lineID"`
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Kind          string          `json:"kind"`
	ServiceID     string          `json:"serviceID,omitempty"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToJournalLineResponse converts a domain line to its response form.
func ToJournalLineResponse(l domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:        l.LineID,
		TransactionID: l.TransactionID,
		Date:          l.Date,
		Kind:          string(l.Kind),
		ServiceID:     l.ServiceID,
		AccountCode:   l.AccountCode,
		AccountName:   l.AccountName,
		Debit:         l.Debit,
		Credit:        l.Credit,
		Description:   l.Description,
		CreatedAt:     l.CreatedAt,
	}
}

// ToJournalLineResponses converts a slice of domain lines.
func ToJournalLineResponses(lines []domain.JournalLine) []JournalLineResponse {
	out := make([]JournalLineResponse, len(lines))
	for i, l := range lines {
		out[i] = ToJournalLineResponse(l)
	}
	return out
}
