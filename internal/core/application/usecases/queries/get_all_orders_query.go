package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists orders with their line items.
//
// Example:
//
//	orders, err := NewGetAllOrdersQueryHandler(db).Handle(ctx, NewGetAllOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("order %d on table %d is %s\n", o.ID, o.OrderTableID, o.Status)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is the order read model. Status holds the stored
// status name (COOKING, MEAL or COMPLETION).
type GetAllOrdersQueryResponse struct {
	ID           kernel.ID
	OrderTableID kernel.ID
	Status       string
	OrderedTime  time.Time
	LineItems    []OrderLineItemResponse
}

// OrderLineItemResponse carries the menu snapshot taken when the line was ordered.
type OrderLineItemResponse struct {
	Seq       int64
	MenuID    kernel.ID
	MenuName  string
	MenuPrice decimal.Decimal
	Quantity  int64
}
