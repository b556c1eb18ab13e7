package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partners,
// including their active-order counter.
type PartnerRepository interface {
	// NextID reserves an identifier for a new partner.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add persists a new partner.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists the partner, active-order counter included.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner by identifier.
	Get(ctx context.Context, id kernel.ID) (*partner.Partner, error)

	// GetForUpdate is Get with the partner row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*partner.Partner, error)

	// GetAllFree returns every partner with zero active orders, ordered by identifier,
	// and locks those rows until the transaction ends. A concurrent placement that wants
	// the same partners blocks here instead of reading a stale counter.
	//
	// Example:
	//   free, err := repo.GetAllFree(ctx)
	//   if err != nil {
	//       return err
	//   }
	//   chosen, err := services.NewOrderDispatcher().Dispatch(free)
	GetAllFree(ctx context.Context) ([]*partner.Partner, error)
}
