// Package ports defines the contracts between the point-of-sale core and its
// infrastructure: one repository per aggregate, the outbox store, the message
// bus and the unit of work that ties them to a transaction.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// NextID allocates an identifier for a product that is about to be created.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by identifier.
	// Returns errs.ObjectNotFoundError when no product has that identifier.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)

	// FindAll returns every product ordered by identifier.
	FindAll(ctx context.Context) ([]*product.Product, error)

	// FindAllByIDIn returns the products whose identifiers are listed. Missing
	// identifiers are skipped, so the result may be shorter than ids.
	FindAllByIDIn(ctx context.Context, ids []kernel.ID) ([]*product.Product, error)
}
