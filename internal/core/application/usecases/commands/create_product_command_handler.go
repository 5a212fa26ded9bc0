package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/product"
)

// CreateProductCommandHandler persists new products.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle allocates an identifier, creates the product and commits it.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	id, err := productRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := product.NewProduct(id, cmd.Name(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = productRepo.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
