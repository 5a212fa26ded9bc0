package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllMenusQueryIsNotConstructed = errors.New(
	"GetAllMenusQuery must be created via NewGetAllMenusQuery constructor",
)

// GetAllMenusQuery lists menus together with their products.
type GetAllMenusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllMenusQuery() GetAllMenusQuery {
	return GetAllMenusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenusQueryIsNotConstructed)
}

// GetAllMenusQueryResponse is the menu read model. MenuProducts keep insertion order.
type GetAllMenusQueryResponse struct {
	ID           kernel.ID
	Name         string
	Price        decimal.Decimal
	MenuGroupID  kernel.ID
	MenuProducts []MenuProductResponse
}

type MenuProductResponse struct {
	Seq       int64
	ProductID kernel.ID
	Quantity  int64
}
