package ports

import (
	"context"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Soft-deleted orders are invisible to every method.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order if it is still at the version
	// it was loaded with, and bumps the stored version. A stale aggregate yields
	// errs.ErrVersionConflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier or returns errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the surrounding transaction
	// ends. Must be called inside UnitOfWork.Begin.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete soft-deletes the order. Deleting a missing order yields
	// errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error
}
