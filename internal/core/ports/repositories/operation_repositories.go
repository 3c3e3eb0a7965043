package repositories

import (
	"context"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
)

// OperationRepository persists recorded payment-service operations.
type OperationRepository interface {
	SaveOperation(ctx context.Context, op domain.Operation) error
	FindOperationByID(ctx context.Context, operationID string) (*domain.Operation, error)
	// FindLatestOperation returns the highest-numbered operation of a
	// service, or ErrNotFound when the service has none.
	FindLatestOperation(ctx context.Context, serviceID string) (*domain.Operation, error)
	ListOperations(ctx context.Context, serviceID string, from, to time.Time) ([]domain.Operation, error)
	// NextOperationNumber reserves the next monotonic operation number.
	NextOperationNumber(ctx context.Context) (int64, error)
}
