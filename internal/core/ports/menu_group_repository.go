package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
)

// MenuGroupRepository defines the persistence contract for menu group aggregates.
type MenuGroupRepository interface {
	NextID(ctx context.Context) (kernel.ID, error)
	Add(ctx context.Context, aggregate *menugroup.MenuGroup) error

	// Get returns errs.ObjectNotFoundError when the group does not exist.
	Get(ctx context.Context, id kernel.ID) (*menugroup.MenuGroup, error)

	FindAll(ctx context.Context) ([]*menugroup.MenuGroup, error)
}
