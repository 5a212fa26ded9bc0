// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	TableGroupRepoFactory interface {
		TableGroupRepository() ports.TableGroupRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CatalogUoW covers products, menu groups and menus.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		MenuGroupRepoFactory
		MenuRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// TableUoW covers order tables and table groups, plus the orders that
	// decide whether a table can be released.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tables := uow.OrderTableRepository()
	//   orders := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TableUoW interface {
		TxManager
		OrderTableRepoFactory
		TableGroupRepoFactory
		OrderRepoFactory
	}

	TableUoWFactory interface {
		Create() TableUoW
	}

	// OrderUoW covers orders together with the tables and menus they reference.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OrderTableRepoFactory
		MenuRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW covers the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
