// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// A unit of work owns one database transaction and hands out repositories bound to it,
// so every change made by a command either commits together or not at all.
//
// Key Features:
//   - Transaction management across the customer, menu, partner, order and outbox repositories
//   - Aggregate tracking; domain events are written to the outbox inside the same transaction
//   - Failure classification into conflict (retryable) and unavailable storage
//   - Transaction-scoped advisory lock serialising order placement
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.PartnerRepository().Update(ctx, partner); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Rows are locked in a fixed order (placement lock, menu item, partners, order)
package postgres

import (
	"context"

	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/outboxrepo"
	"foodorder/internal/adapters/out/postgres/partnerrepo"
	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/ddd"

	"gorm.io/gorm"
)

// placementLockKey identifies the advisory lock taken by every placement transaction.
const placementLockKey int64 = 0x666f6f64

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]ddd.EventSource, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the aggregates it changed.
// On commit the pending domain events of every tracked aggregate are stored in the outbox
// before the transaction is committed, so an event exists if and only if its change does.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []ddd.EventSource
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
// Any failure to start is reported as ports.ErrStorageUnavailable.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerrs.Unavailable(tx.Error)
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit writes the outbox rows for tracked aggregates and commits the transaction.
// Returns error if no active transaction exists or if the commit operation fails.
// The transaction is closed afterwards in both cases.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	events := make([]ddd.DomainEvent, 0)
	for _, aggregate := range uow.trackedAggregates {
		events = append(events, aggregate.DomainEvents()...)
	}

	if err := outboxrepo.NewGormOutboxRepository(uow.tx).AddEvents(ctx, events); err != nil {
		_ = uow.tx.Rollback()
		uow.tx = nil
		return err
	}

	if err := uow.tx.Commit().Error; err != nil {
		uow.tx = nil
		return pgerrs.Classify(err)
	}
	uow.tx = nil

	for _, aggregate := range uow.trackedAggregates {
		aggregate.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if there is nothing to roll back, which makes it
// safe to defer after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// LockPlacements blocks until no other placement transaction holds the lock.
func (uow *GormUnitOfWork) LockPlacements(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", placementLockKey).Error
	return pgerrs.Classify(err)
}

func (uow *GormUnitOfWork) NextOrderID(ctx context.Context) (kernel.ID, error) {
	var next int64
	if err := uow.conn().WithContext(ctx).Raw("SELECT nextval('order_id_seq')").Scan(&next).Error; err != nil {
		return kernel.ID{}, pgerrs.Classify(err)
	}
	return kernel.NewID(next)
}

// CustomerRepository provides access to customer persistence within the unit of work.
// Repository operations execute within the current transaction if one is active,
// otherwise they use the main database connection.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

func (uow *GormUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return menurepo.NewGormMenuItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn())
}

// OrderRepository returns a repository that tracks every order it adds or updates,
// so the events those orders raised reach the outbox on Commit.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Called by repository implementations after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate ddd.EventSource) {
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
