package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/utils/accounting"
)

var (
	ErrUnbalancedTransaction = errors.New("transaction debits and credits do not balance")
	ErrEmptyTransaction      = errors.New("transaction must have at least one line")
	ErrAccountNotFound       = errors.New("account not found")
	ErrAccountInactive       = errors.New("account is inactive")
)

// journalService is the transaction recorder: the only write path into the
// journal store.
type journalService struct {
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
	notifier    portssvc.Notifier
}

// NewJournalService creates a new JournalSvc.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository, notifier portssvc.Notifier) portssvc.JournalSvc {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

var _ portssvc.JournalSvc = (*journalService)(nil)

// Record validates a batch of lines and appends them atomically. The balance
// check here is the correctness gate for the whole system: an unbalanced
// batch must never reach the store.
func (s *journalService) Record(ctx context.Context, req dto.RecordTransactionRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Lines) == 0 {
		return "", ErrEmptyTransaction
	}

	now := time.Now().UTC()
	transactionID := uuid.NewString()

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, in := range req.Lines {
		l := in.ToDomainLine()
		l.LineID = uuid.NewString()
		l.TransactionID = transactionID
		l.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

		if err := accounting.ValidateLine(l); err != nil {
			return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}

		account, err := s.accountRepo.FindAccountByCode(ctx, l.AccountCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", fmt.Errorf("%w: code %s", ErrAccountNotFound, l.AccountCode)
			}
			logger.Error("Failed to fetch account for transaction", slog.String("error", err.Error()), slog.String("account_code", l.AccountCode))
			return "", fmt.Errorf("failed to fetch account %s: %w", l.AccountCode, err)
		}
		if !account.IsActive {
			return "", fmt.Errorf("%w: code %s", ErrAccountInactive, l.AccountCode)
		}

		lines[i] = l
	}

	debits, credits := accounting.SumSides(lines)
	if !debits.Equal(credits) {
		return "", fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			ErrUnbalancedTransaction, debits.String(), credits.String())
	}

	if err := s.journalRepo.SaveTransaction(ctx, lines); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return "", fmt.Errorf("failed to save transaction: %w", err)
	}

	middleware.JournalWrites.Inc()
	if s.notifier != nil {
		s.notifier.LedgerChanged()
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", transactionID),
		slog.Int("line_count", len(lines)),
		slog.String("amount", debits.String()))
	return transactionID, nil
}

// Reverse writes a new transaction mirroring the original with debit and
// credit sides swapped. The original lines stay in the journal untouched.
func (s *journalService) Reverse(ctx context.Context, transactionID string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.journalRepo.FindLinesByTransactionID(ctx, transactionID)
	if err != nil {
		return "", fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if len(original) == 0 {
		return "", fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}

	now := time.Now().UTC()
	reversalID := uuid.NewString()
	lines := make([]domain.JournalLine, len(original))
	for i, l := range original {
		lines[i] = domain.JournalLine{
			LineID:        uuid.NewString(),
			TransactionID: reversalID,
			Date:          now,
			Kind:          domain.KindReversal,
			ServiceID:     l.ServiceID,
			AccountCode:   l.AccountCode,
			AccountName:   l.AccountName,
			Debit:         l.Credit,
			Credit:        l.Debit,
			Description:   fmt.Sprintf("reversal of transaction %s", transactionID),
			AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
	}

	if err := s.journalRepo.SaveTransaction(ctx, lines); err != nil {
		logger.Error("Failed to save reversal", slog.String("error", err.Error()), slog.String("original_transaction_id", transactionID))
		return "", fmt.Errorf("failed to save reversal of %s: %w", transactionID, err)
	}

	middleware.JournalWrites.Inc()
	if s.notifier != nil {
		s.notifier.LedgerChanged()
	}

	logger.Info("Transaction reversed",
		slog.String("original_transaction_id", transactionID),
		slog.String("reversal_transaction_id", reversalID))
	return reversalID, nil
}

// Transaction returns the lines of one recorded transaction.
func (s *journalService) Transaction(ctx context.Context, transactionID string) ([]domain.JournalLine, error) {
	lines, err := s.journalRepo.FindLinesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return lines, nil
}
