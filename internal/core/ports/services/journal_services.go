package services

import (
	"context"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
)

// JournalSvc is the transaction recorder: the single write path into the
// journal. Every balanced batch is appended atomically; an unbalanced batch
// never reaches the store.
type JournalSvc interface {
	// Record validates and appends a batch of lines, returning the shared
	// transaction ID.
	Record(ctx context.Context, req dto.RecordTransactionRequest) (string, error)
	// Reverse writes a new transaction with swapped debit/credit sides for
	// every line of the original. Physical deletion is not offered.
	Reverse(ctx context.Context, transactionID string) (string, error)
	// Transaction returns the lines of one transaction.
	Transaction(ctx context.Context, transactionID string) ([]domain.JournalLine, error)
}

// Notifier is the fire-and-forget ledger-changed broadcast emitted after any
// successful journal write. It carries no payload; consumers re-query.
type Notifier interface {
	LedgerChanged()
}
