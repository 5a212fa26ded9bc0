package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
)

// OrderTableRepository defines the persistence contract for order table aggregates.
type OrderTableRepository interface {
	NextID(ctx context.Context) (kernel.ID, error)
	Add(ctx context.Context, aggregate *ordertable.OrderTable) error

	// Update persists the guest count, empty flag and group membership.
	Update(ctx context.Context, aggregate *ordertable.OrderTable) error

	// Get returns errs.ObjectNotFoundError when the table does not exist.
	Get(ctx context.Context, id kernel.ID) (*ordertable.OrderTable, error)

	FindAll(ctx context.Context) ([]*ordertable.OrderTable, error)

	// FindAllByIDIn returns the tables whose identifiers are listed, skipping missing ones.
	FindAllByIDIn(ctx context.Context, ids []kernel.ID) ([]*ordertable.OrderTable, error)

	// FindAllByTableGroupID returns the current members of a table group.
	FindAllByTableGroupID(ctx context.Context, tableGroupID kernel.ID) ([]*ordertable.OrderTable, error)
}
