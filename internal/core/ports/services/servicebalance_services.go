package services

import (
	"context"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
)

// ServiceBalanceSvc applies the per-service cash/digital state machine: it
// computes the pool transition for an operation, emits the matching balanced
// journal lines, and records the operation with write-time snapshots.
type ServiceBalanceSvc interface {
	RecordOperation(ctx context.Context, req dto.RecordOperationRequest) (*domain.Operation, error)
	// RecordTransfer runs a money-transfer job through the transfer
	// transition and keeps the client-facing transfer record.
	RecordTransfer(ctx context.Context, req dto.RecordTransferRequest) (*domain.Transfer, error)
	ListOperations(ctx context.Context, serviceID string, from, to time.Time) ([]domain.Operation, error)
	ListTransfers(ctx context.Context, from, to time.Time) ([]domain.Transfer, error)
	// CheckReconciliation compares the latest operation snapshot of a
	// service with the journal-derived position.
	CheckReconciliation(ctx context.Context, serviceID string) (*domain.ReconciliationReport, error)
	ConfigureService(ctx context.Context, req dto.ConfigureServiceRequest) (*domain.ServiceConfig, error)
	GetServiceConfig(ctx context.Context, serviceID string) (*domain.ServiceConfig, error)
	ListServiceConfigs(ctx context.Context) ([]domain.ServiceConfig, error)
}
