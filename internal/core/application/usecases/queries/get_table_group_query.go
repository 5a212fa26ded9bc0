package queries

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetTableGroupQueryIsNotConstructed = errors.New(
	"GetTableGroupQuery must be created via NewGetTableGroupQuery constructor",
)

// GetTableGroupQuery looks up one table group and its member tables.
type GetTableGroupQuery struct {
	tableGroupID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetTableGroupQuery(tableGroupID int64) (GetTableGroupQuery, error) {
	id := kernel.ID(tableGroupID)
	if err := id.Validate(); err != nil {
		return GetTableGroupQuery{}, err
	}

	return GetTableGroupQuery{
		tableGroupID: id,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetTableGroupQuery) Validate() error {
	return q.guard.Validate(ErrGetTableGroupQueryIsNotConstructed)
}

func (q GetTableGroupQuery) TableGroupID() kernel.ID {
	return q.tableGroupID
}

// GetTableGroupQueryResponse lists the tables currently assigned to the group.
// The list is empty once the group has been ungrouped.
type GetTableGroupQueryResponse struct {
	ID            kernel.ID
	CreatedDate   time.Time
	OrderTableIDs []kernel.ID
}
