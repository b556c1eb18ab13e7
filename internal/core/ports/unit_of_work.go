package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregates whose domain events
// must be written to the outbox when the transaction commits.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction on one pooled connection.
	Begin(ctx context.Context) error

	// Commit writes pending domain events to the outbox and commits the transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and releases its connection.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// LockPlacements takes the transaction-scoped lock that serialises order placement.
	// It is released by Commit or Rollback.
	LockPlacements(ctx context.Context) error

	// NextOrderID draws the next value of the order identifier sequence.
	// Values are never handed out twice, even when the transaction rolls back.
	NextOrderID(ctx context.Context) (kernel.ID, error)

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// MenuItemRepository returns a MenuItemRepository bound to the current transaction.
	MenuItemRepository() MenuItemRepository

	// PartnerRepository returns a PartnerRepository bound to the current transaction.
	PartnerRepository() PartnerRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// OutboxRepository returns an OutboxRepository bound to the current transaction.
	OutboxRepository() OutboxRepository
}
