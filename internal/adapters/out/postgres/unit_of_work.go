// Package postgres provides the GORM implementation of the Unit of Work pattern.
// The Unit of Work keeps one transaction open for a business operation and
// remembers every aggregate its repositories loaded or saved. On Commit the
// domain events raised on those aggregates are written to the outbox table in
// the same transaction, so a state change and its events are stored together
// or not at all.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	table, err := uow.OrderTableRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// ... change the table
//	if err := uow.OrderTableRepository().Update(ctx, table); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is meant for a single goroutine. Concurrent
// operations use separate instances created by the factory.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"kitchenpos/internal/adapters/out/postgres/menugrouprepo"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/ordertablerepo"
	"kitchenpos/internal/adapters/out/postgres/outboxrepo"
	"kitchenpos/internal/adapters/out/postgres/productrepo"
	"kitchenpos/internal/adapters/out/postgres/tablegrouprepo"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/ddd"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database handle.
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

// Create produces a new UnitOfWork with its own transaction state and tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		tracked: make([]ddd.EventSource, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the outbox writes
// for the aggregates touched inside it.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []ddd.EventSource
}

// Begin starts a transaction. Calling Begin again while one is open does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit appends the pending domain events to the outbox and commits.
// Events are cleared from their aggregates only after a successful commit.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	events := uow.pendingEvents()
	if err := outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, events); err != nil {
		_ = uow.tx.Rollback().Error
		uow.tx = nil
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, source := range uow.tracked {
		source.ClearDomainEvents()
	}
	uow.tracked = uow.tracked[:0]

	return nil
}

// Rollback discards the open transaction. Without one it does nothing, so it
// is safe to defer right after Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return err
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MenuGroupRepository() ports.MenuGroupRepository {
	return menugrouprepo.NewGormMenuGroupRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderTableRepository() ports.OrderTableRepository {
	return ordertablerepo.NewGormOrderTableRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TableGroupRepository() ports.TableGroupRepository {
	return tablegrouprepo.NewGormTableGroupRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// Track registers an aggregate loaded or saved by a repository. Aggregates
// that raise no domain events are ignored, and each aggregate is kept once.
func (uow *GormUnitOfWork) Track(aggregate any) {
	source, ok := aggregate.(ddd.EventSource)
	if !ok {
		return
	}
	for _, tracked := range uow.tracked {
		if tracked == source {
			return
		}
	}
	uow.tracked = append(uow.tracked, source)
}

func (uow *GormUnitOfWork) pendingEvents() []ddd.DomainEvent {
	var events []ddd.DomainEvent
	for _, source := range uow.tracked {
		events = append(events, source.DomainEvents()...)
	}
	return events
}

// conn returns the open transaction, or the plain handle for reads outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
