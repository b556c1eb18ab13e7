package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are inserted once by the placement transaction; afterwards only their status is written.
type OrderRepository interface {
	// Add persists a new order aggregate. The identifier must come from UnitOfWork.NextOrderID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	// Every other column is write-once and is never part of the update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when no order has that identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	// Status transitions use it so that two concurrent updates of the same order serialise.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)
}
