package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/ordertable"
)

type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewChangeNumberOfGuestsCommandHandler(uowFactory TableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeNumberOfGuestsCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeNumberOfGuestsCommand,
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

	table, err := tableRepo.Get(ctx, cmd.OrderTableID())
	if err != nil {
		return nil, err
	}

	if err = table.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
		return nil, err
	}

	if err = tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
