package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/tablegroup"
)

// TableGroupRepository defines the persistence contract for table group aggregates.
// Membership is stored on the order tables, so Get derives the member ids from them.
type TableGroupRepository interface {
	NextID(ctx context.Context) (kernel.ID, error)
	Add(ctx context.Context, aggregate *tablegroup.TableGroup) error

	// Get returns errs.ObjectNotFoundError when the group does not exist.
	Get(ctx context.Context, id kernel.ID) (*tablegroup.TableGroup, error)
}
