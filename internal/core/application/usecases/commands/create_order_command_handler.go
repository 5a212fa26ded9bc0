package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places orders.
//
// Checks, in order:
//   - at least one line item
//   - every line item references a distinct existing menu
//   - the table exists and is not empty
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The new order starts in COOKING.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	items, err := buildLineItems(ctx, uow.MenuRepository(), cmd.lines)
	if err != nil {
		return nil, err
	}

	table, err := uow.OrderTableRepository().Get(ctx, cmd.OrderTableID())
	if err != nil {
		return nil, err
	}

	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(id, table, items, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
