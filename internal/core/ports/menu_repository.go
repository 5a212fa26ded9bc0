package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu aggregates.
// A menu is always loaded together with its menu products.
type MenuRepository interface {
	NextID(ctx context.Context) (kernel.ID, error)

	// Add persists a new menu and its menu products.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Get returns errs.ObjectNotFoundError when the menu does not exist.
	Get(ctx context.Context, id kernel.ID) (*menu.Menu, error)

	FindAll(ctx context.Context) ([]*menu.Menu, error)

	// FindAllByIDIn returns the menus whose identifiers are listed, skipping missing ones.
	FindAllByIDIn(ctx context.Context, ids []kernel.ID) ([]*menu.Menu, error)

	// CountByIDIn counts the distinct existing menus among ids.
	CountByIDIn(ctx context.Context, ids []kernel.ID) (int64, error)
}
