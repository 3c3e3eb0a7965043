package repositories

import (
	"context"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
)

// JournalRepository is the journal collection boundary. The store offers no
// cross-collection transactions, so SaveTransaction must provide its own
// atomicity for the multi-line batch: all lines become visible together or
// not at all.
type JournalRepository interface {
	// SaveTransaction durably appends a balanced batch of lines as one unit.
	SaveTransaction(ctx context.Context, lines []domain.JournalLine) error
	// FindLinesInRange returns lines with from <= date <= to passing the
	// filter, ordered by date then creation order.
	FindLinesInRange(ctx context.Context, from, to time.Time, filter domain.LineFilter) ([]domain.JournalLine, error)
	// FindLinesByTransactionID returns all lines of one transaction.
	FindLinesByTransactionID(ctx context.Context, txnID string) ([]domain.JournalLine, error)
}
