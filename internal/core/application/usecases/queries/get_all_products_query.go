// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read straight from the tables with SQL and return flat read models
// instead of rebuilding aggregates.
package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery lists every product on sale.
//
// Example:
//
//	query := NewGetAllProductsQuery()
//	handler := NewGetAllProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetAllProductsQueryResponse is the product read model.
type GetAllProductsQueryResponse struct {
	ID    kernel.ID
	Name  string
	Price decimal.Decimal
}
