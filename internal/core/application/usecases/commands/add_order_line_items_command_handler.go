package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
)

type AddOrderLineItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddOrderLineItemsCommandHandler(uowFactory OrderUoWFactory) AddOrderLineItemsCommandHandler {
	return AddOrderLineItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends line items to a COOKING order.
func (h AddOrderLineItemsCommandHandler) Handle(ctx context.Context, cmd AddOrderLineItemsCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	items, err := buildLineItems(ctx, uow.MenuRepository(), cmd.lines)
	if err != nil {
		return nil, err
	}

	if err = o.AddOrderLineItems(items); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
