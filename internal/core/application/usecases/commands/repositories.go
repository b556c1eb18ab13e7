// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PlacementLocker serialises placements and allocates order identifiers.
	PlacementLocker interface {
		LockPlacements(ctx context.Context) error
		NextOrderID(ctx context.Context) (kernel.ID, error)
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides access to partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// MenuItemRepoFactory provides access to menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OutboxRepoFactory provides access to the outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// PlacementUoW covers everything the placement transaction reads and writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.LockPlacements(ctx)
	//   item, err := uow.MenuItemRepository().GetForUpdate(ctx, restaurantID, itemID)
	//   free, err := uow.PartnerRepository().GetAllFree(ctx)
	//   id, err := uow.NextOrderID(ctx)
	//   // ... build and add the order
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		PlacementLocker
		CustomerRepoFactory
		MenuItemRepoFactory
		PartnerRepoFactory
		OrderRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// OrderStatusUoW manages transactions that move an order and release its partner.
	OrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// OrderStatusUoWFactory creates new order status unit of work instances.
	OrderStatusUoWFactory interface {
		Create() OrderStatusUoW
	}

	// MenuUoW manages transactions for menu-only operations.
	MenuUoW interface {
		TxManager
		MenuItemRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// OutboxUoW manages the relay transaction that holds the pending batch locked
	// while it is published.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
