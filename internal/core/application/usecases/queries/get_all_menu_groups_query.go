package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllMenuGroupsQueryIsNotConstructed = errors.New(
	"GetAllMenuGroupsQuery must be created via NewGetAllMenuGroupsQuery constructor",
)

type GetAllMenuGroupsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllMenuGroupsQuery() GetAllMenuGroupsQuery {
	return GetAllMenuGroupsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllMenuGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenuGroupsQueryIsNotConstructed)
}

type GetAllMenuGroupsQueryResponse struct {
	ID   kernel.ID
	Name string
}
