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
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientBalance  = errors.New("insufficient service pool balance")
	ErrUnknownOperationKind = errors.New("unknown operation kind")
)

// FundsPolicy decides what an insufficient-funds check does.
type FundsPolicy string

const (
	// PolicyBlock rejects the operation before any write.
	PolicyBlock FundsPolicy = "block"
	// PolicyWarn records the operation and logs a warning.
	PolicyWarn FundsPolicy = "warn"
)

// revenueModel is the closed strategy set for journal emission: a
// proprietary service books its take as service revenue, a brokered one
// passes principal through and books only fees+commission as fee revenue.
type revenueModel struct {
	accountCode string
	accountName string
}

func modelFor(cfg domain.ServiceConfig) revenueModel {
	if cfg.IsOwnService {
		return revenueModel{accountCode: domain.AccountServiceRevenue, accountName: "Service revenue"}
	}
	return revenueModel{accountCode: domain.AccountFeeRevenue, accountName: "Fee and commission revenue"}
}

// lineSpec is one declarative (account, side, amount) tuple produced by the
// transition; the recorder receives the specs as ordinary line inputs.
type lineSpec struct {
	accountCode string
	accountName string
	debit       decimal.Decimal
	credit      decimal.Decimal
}

// serviceBalanceService applies the per-service state machine and keeps the
// operation log.
type serviceBalanceService struct {
	journalSvc    portssvc.JournalSvc
	ledgerSvc     portssvc.LedgerSvc
	operationRepo portsrepo.OperationRepository
	configRepo    portsrepo.ServiceConfigRepository
	transferRepo  portsrepo.TransferRepository
	settingsRepo  portsrepo.SettingsRepository
	fundsPolicy   FundsPolicy
}

// NewServiceBalanceService creates a new ServiceBalanceSvc.
func NewServiceBalanceService(
	journalSvc portssvc.JournalSvc,
	ledgerSvc portssvc.LedgerSvc,
	operationRepo portsrepo.OperationRepository,
	configRepo portsrepo.ServiceConfigRepository,
	transferRepo portsrepo.TransferRepository,
	settingsRepo portsrepo.SettingsRepository,
	fundsPolicy FundsPolicy,
) portssvc.ServiceBalanceSvc {
	if fundsPolicy != PolicyWarn {
		fundsPolicy = PolicyBlock
	}
	return &serviceBalanceService{
		journalSvc:    journalSvc,
		ledgerSvc:     ledgerSvc,
		operationRepo: operationRepo,
		configRepo:    configRepo,
		transferRepo:  transferRepo,
		settingsRepo:  settingsRepo,
		fundsPolicy:   fundsPolicy,
	}
}

var _ portssvc.ServiceBalanceSvc = (*serviceBalanceService)(nil)

// poolTransition computes the new cash/digital levels for an operation.
// Deposit and Transfer take cash in and relay principal through the digital
// channel; Withdrawal is the mirror image. Fees land in the pool the
// business's own money moves into; commission behaves like an extra fee.
func poolTransition(kind domain.OperationKind, cash, digital, principal, fees, commission decimal.Decimal) (cashAfter, digitalAfter decimal.Decimal, err error) {
	switch kind {
	case domain.OpDeposit, domain.OpTransfer:
		cashAfter = cash.Add(principal).Add(fees)
		digitalAfter = digital.Sub(principal).Add(commission)
	case domain.OpWithdrawal:
		cashAfter = cash.Sub(principal)
		digitalAfter = digital.Add(principal).Add(fees).Add(commission)
	default:
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownOperationKind, kind)
	}
	return cashAfter, digitalAfter, nil
}

// emissionSpecs turns pool deltas into balanced line specs. Each pool's net
// change becomes one debit-or-credit leg and the business's take
// (fees+commission) is credited to the model's revenue account, so the batch
// always satisfies the recorder's balance invariant: the deltas sum to the
// take by construction of the transition table.
func emissionSpecs(cashDelta, digitalDelta, take decimal.Decimal, model revenueModel) []lineSpec {
	specs := make([]lineSpec, 0, 3)
	appendPool := func(code, name string, delta decimal.Decimal) {
		switch {
		case delta.IsPositive():
			specs = append(specs, lineSpec{accountCode: code, accountName: name, debit: delta, credit: decimal.Zero})
		case delta.IsNegative():
			specs = append(specs, lineSpec{accountCode: code, accountName: name, debit: decimal.Zero, credit: delta.Neg()})
		}
	}
	appendPool(domain.AccountCash, "Cash on hand", cashDelta)
	appendPool(domain.AccountDigital, "Digital wallet float", digitalDelta)
	if take.IsPositive() {
		specs = append(specs, lineSpec{accountCode: model.accountCode, accountName: model.accountName, debit: decimal.Zero, credit: take})
	}
	return specs
}

var opKindToTxnKind = map[domain.OperationKind]domain.TransactionKind{
	domain.OpDeposit:    domain.KindDeposit,
	domain.OpWithdrawal: domain.KindWithdrawal,
	domain.OpTransfer:   domain.KindTransfer,
}

// RecordOperation validates the operation, computes the pool transition,
// writes the balanced journal lines and persists the operation with its
// write-time snapshots. No pool state mutates on a validation failure.
func (s *serviceBalanceService) RecordOperation(ctx context.Context, req dto.RecordOperationRequest) (*domain.Operation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := domain.OperationKind(req.Kind)
	txnKind, ok := opKindToTxnKind[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperationKind, req.Kind)
	}
	if req.Principal.IsNegative() || req.Fees.IsNegative() || req.Commission.IsNegative() {
		return nil, fmt.Errorf("%w: operation amounts must be non-negative", apperrors.ErrValidation)
	}
	if req.Principal.IsZero() {
		return nil, fmt.Errorf("%w: principal amount is required", apperrors.ErrValidation)
	}

	cfg, err := s.serviceConfigOrDefault(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	pools, err := s.ledgerSvc.ServicePools(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive pools for service %s: %w", req.ServiceID, err)
	}

	cashAfter, digitalAfter, err := poolTransition(kind, pools.Cash, pools.Digital, req.Principal, req.Fees, req.Commission)
	if err != nil {
		return nil, err
	}

	if cashAfter.IsNegative() || digitalAfter.IsNegative() {
		if s.fundsPolicy == PolicyBlock {
			return nil, fmt.Errorf("%w: service %s would reach cash=%s digital=%s",
				ErrInsufficientBalance, req.ServiceID, cashAfter.String(), digitalAfter.String())
		}
		logger.Warn("Operation drives a service pool negative",
			slog.String("service_id", req.ServiceID),
			slog.String("cash_after", cashAfter.String()),
			slog.String("digital_after", digitalAfter.String()))
	}

	take := req.Fees.Add(req.Commission)
	specs := emissionSpecs(cashAfter.Sub(pools.Cash), digitalAfter.Sub(pools.Digital), take, modelFor(cfg))

	description := fmt.Sprintf("%s %s %s", cfg.Label, string(kind), req.Principal.String())
	if req.CounterpartName != "" {
		description = fmt.Sprintf("%s for %s", description, req.CounterpartName)
	}

	txnReq := dto.RecordTransactionRequest{Lines: make([]dto.JournalLineInput, len(specs))}
	for i, spec := range specs {
		txnReq.Lines[i] = dto.JournalLineInput{
			Date:        req.Date,
			Kind:        string(txnKind),
			ServiceID:   req.ServiceID,
			AccountCode: spec.accountCode,
			AccountName: spec.accountName,
			Debit:       spec.debit,
			Credit:      spec.credit,
			Description: description,
		}
	}

	transactionID, err := s.journalSvc.Record(ctx, txnReq)
	if err != nil {
		return nil, fmt.Errorf("failed to record operation journal lines: %w", err)
	}

	number, err := s.operationRepo.NextOperationNumber(ctx)
	if err != nil {
		s.compensate(ctx, transactionID, err)
		return nil, fmt.Errorf("failed to reserve operation number: %w", err)
	}

	now := time.Now().UTC()
	op := domain.Operation{
		OperationID:      uuid.NewString(),
		Number:           number,
		Kind:             kind,
		ServiceID:        req.ServiceID,
		Date:             req.Date,
		Principal:        req.Principal,
		Fees:             req.Fees,
		Commission:       req.Commission,
		CashBefore:       pools.Cash,
		CashAfter:        cashAfter,
		DigitalBefore:    pools.Digital,
		DigitalAfter:     digitalAfter,
		CounterpartName:  req.CounterpartName,
		CounterpartPhone: req.CounterpartPhone,
		Notes:            req.Notes,
		TransactionID:    transactionID,
		AuditFields:      domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.operationRepo.SaveOperation(ctx, op); err != nil {
		s.compensate(ctx, transactionID, err)
		return nil, fmt.Errorf("failed to save operation: %w", err)
	}

	logger.Info("Operation recorded",
		slog.String("operation_id", op.OperationID),
		slog.Int64("number", op.Number),
		slog.String("kind", string(kind)),
		slog.String("service_id", req.ServiceID))
	return &op, nil
}

// compensate reverses an already-committed journal transaction after a later
// step failed, so no half-recorded operation remains visible. The reversal is
// a new transaction, never an edit.
func (s *serviceBalanceService) compensate(ctx context.Context, transactionID string, cause error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if _, rerr := s.journalSvc.Reverse(ctx, transactionID); rerr != nil {
		logger.Error("Compensating reversal failed; journal and operation log disagree",
			slog.String("transaction_id", transactionID),
			slog.String("cause", cause.Error()),
			slog.String("error", rerr.Error()))
		return
	}
	logger.Warn("Operation write failed after journal commit; transaction reversed",
		slog.String("transaction_id", transactionID),
		slog.String("cause", cause.Error()))
}

// RecordTransfer runs a client money-transfer through the transfer
// transition and keeps the transfer record alongside the operation.
func (s *serviceBalanceService) RecordTransfer(ctx context.Context, req dto.RecordTransferRequest) (*domain.Transfer, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	fees := req.Fees
	if fees.IsZero() {
		fees = settings.DefaultTransferFee
	}
	rate := req.ExchangeRate
	if rate.IsZero() {
		rate = settings.DefaultExchangeRate
	}

	op, err := s.RecordOperation(ctx, dto.RecordOperationRequest{
		Kind:             string(domain.OpTransfer),
		ServiceID:        req.ServiceID,
		Date:             req.Date,
		Principal:        req.Amount,
		Fees:             fees,
		CounterpartName:  req.ReceiverName,
		CounterpartPhone: req.ReceiverPhone,
		Notes:            req.Notes,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transfer := domain.Transfer{
		TransferID:    uuid.NewString(),
		Date:          req.Date,
		ServiceID:     req.ServiceID,
		Amount:        req.Amount,
		Fees:          fees,
		ExchangeRate:  rate,
		SenderName:    req.SenderName,
		ReceiverName:  req.ReceiverName,
		ReceiverPhone: req.ReceiverPhone,
		Notes:         req.Notes,
		OperationID:   op.OperationID,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		return nil, fmt.Errorf("failed to save transfer record: %w", err)
	}
	return &transfer, nil
}

// ListOperations returns the operations of a service in a period.
func (s *serviceBalanceService) ListOperations(ctx context.Context, serviceID string, from, to time.Time) ([]domain.Operation, error) {
	return s.operationRepo.ListOperations(ctx, serviceID, from, to)
}

// ListTransfers returns the transfer jobs of a period.
func (s *serviceBalanceService) ListTransfers(ctx context.Context, from, to time.Time) ([]domain.Transfer, error) {
	return s.transferRepo.ListTransfers(ctx, from, to)
}

// CheckReconciliation compares the latest operation snapshot against the
// journal-derived position. A mismatch is surfaced, never silently trusted.
func (s *serviceBalanceService) CheckReconciliation(ctx context.Context, serviceID string) (*domain.ReconciliationReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pools, err := s.ledgerSvc.ServicePools(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive pools for service %s: %w", serviceID, err)
	}

	report := &domain.ReconciliationReport{
		ServiceID:      serviceID,
		DerivedCash:    pools.Cash,
		DerivedDigital: pools.Digital,
		CashDelta:      decimal.Zero,
		DigitalDelta:   decimal.Zero,
		InAgreement:    true,
	}

	latest, err := s.operationRepo.FindLatestOperation(ctx, serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No operations yet: nothing to disagree with.
			report.SnapshotCash = pools.Cash
			report.SnapshotDigital = pools.Digital
			return report, nil
		}
		return nil, fmt.Errorf("failed to load latest operation for service %s: %w", serviceID, err)
	}

	report.OperationID = latest.OperationID
	report.SnapshotCash = latest.CashAfter
	report.SnapshotDigital = latest.DigitalAfter
	report.CashDelta = latest.CashAfter.Sub(pools.Cash)
	report.DigitalDelta = latest.DigitalAfter.Sub(pools.Digital)
	report.InAgreement = report.CashDelta.IsZero() && report.DigitalDelta.IsZero()

	if !report.InAgreement {
		logger.Warn("Operation snapshot disagrees with journal-derived pools",
			slog.String("service_id", serviceID),
			slog.String("operation_id", latest.OperationID),
			slog.String("cash_delta", report.CashDelta.String()),
			slog.String("digital_delta", report.DigitalDelta.String()))
	}
	return report, nil
}

// ConfigureService creates or updates the policy record of a service.
func (s *serviceBalanceService) ConfigureService(ctx context.Context, req dto.ConfigureServiceRequest) (*domain.ServiceConfig, error) {
	now := time.Now().UTC()
	cfg := domain.ServiceConfig{
		ServiceID:                req.ServiceID,
		Label:                    req.Label,
		IsOwnService:             req.IsOwnService,
		DefaultFeePercent:        req.DefaultFeePercent,
		DefaultCommissionPercent: req.DefaultCommissionPercent,
		AuditFields:              domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if cfg.Label == "" {
		cfg.Label = cfg.ServiceID
	}
	if err := s.configRepo.UpsertServiceConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save service config %s: %w", req.ServiceID, err)
	}
	return &cfg, nil
}

// GetServiceConfig returns the stored config, or the brokered default for
// services never configured.
func (s *serviceBalanceService) GetServiceConfig(ctx context.Context, serviceID string) (*domain.ServiceConfig, error) {
	cfg, err := s.serviceConfigOrDefault(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ListServiceConfigs returns every stored service config.
func (s *serviceBalanceService) ListServiceConfigs(ctx context.Context) ([]domain.ServiceConfig, error) {
	return s.configRepo.ListServiceConfigs(ctx)
}

func (s *serviceBalanceService) serviceConfigOrDefault(ctx context.Context, serviceID string) (domain.ServiceConfig, error) {
	cfg, err := s.configRepo.FindServiceConfig(ctx, serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultServiceConfig(serviceID), nil
		}
		return domain.ServiceConfig{}, fmt.Errorf("failed to load service config %s: %w", serviceID, err)
	}
	return *cfg, nil
}
