package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and collects the domain events of every
// aggregate its repositories touched. On Commit those events are written to the
// outbox in the same transaction as the aggregates.
//
// Repositories obtained before Begin operate outside any transaction and are
// meant for reads.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit writes pending domain events to the outbox and commits the transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. It is a no-op without one.
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository
	MenuGroupRepository() MenuGroupRepository
	MenuRepository() MenuRepository
	OrderTableRepository() OrderTableRepository
	TableGroupRepository() TableGroupRepository
	OrderRepository() OrderRepository
	OutboxRepository() OutboxRepository
}
