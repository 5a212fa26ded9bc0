package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/ordertable"
)

type CreateOrderTableCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewCreateOrderTableCommandHandler(uowFactory TableUoWFactory) CreateOrderTableCommandHandler {
	return CreateOrderTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates an ungrouped table.
func (h CreateOrderTableCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderTableCommand,
) (*ordertable.OrderTable, error) {
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

	tableRepo := uow.OrderTableRepository()

	id, err := tableRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	table, err := ordertable.NewOrderTable(id, cmd.NumberOfGuests(), cmd.Empty())
	if err != nil {
		return nil, err
	}

	if err = tableRepo.Add(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
