package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllOrderTablesQueryIsNotConstructed = errors.New(
	"GetAllOrderTablesQuery must be created via NewGetAllOrderTablesQuery constructor",
)

// GetAllOrderTablesQuery lists every table with its occupancy.
type GetAllOrderTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrderTablesQuery() GetAllOrderTablesQuery {
	return GetAllOrderTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrderTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrderTablesQueryIsNotConstructed)
}

// GetAllOrderTablesQueryResponse is the table read model. TableGroupID is nil for ungrouped tables.
type GetAllOrderTablesQueryResponse struct {
	ID             kernel.ID
	TableGroupID   *kernel.ID
	NumberOfGuests int
	Empty          bool
}
