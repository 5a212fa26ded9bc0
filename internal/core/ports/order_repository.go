package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always loaded together with its line items.
type OrderRepository interface {
	NextID(ctx context.Context) (kernel.ID, error)

	// Add persists a new order and its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and any line items added since the order was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	FindAll(ctx context.Context) ([]*order.Order, error)

	// ExistsByOrderTableIDAndStatusIn reports whether the table has an order in
	// one of the given statuses.
	ExistsByOrderTableIDAndStatusIn(ctx context.Context, orderTableID kernel.ID, statuses []order.Status) (bool, error)

	// FindByTableGroupID returns every order placed on a current member table of the group.
	FindByTableGroupID(ctx context.Context, tableGroupID kernel.ID) ([]*order.Order, error)
}
