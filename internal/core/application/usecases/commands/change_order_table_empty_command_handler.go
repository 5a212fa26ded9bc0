package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/services"
)

// ChangeOrderTableEmptyCommandHandler flips a table's empty flag. Emptying is
// refused while the table has an order in COOKING or MEAL.
type ChangeOrderTableEmptyCommandHandler struct {
	uowFactory TableUoWFactory
	releaser   services.TableReleaser
}

func NewChangeOrderTableEmptyCommandHandler(uowFactory TableUoWFactory) ChangeOrderTableEmptyCommandHandler {
	return ChangeOrderTableEmptyCommandHandler{
		uowFactory: uowFactory,
		releaser:   services.NewTableReleaser(),
	}
}

func (h ChangeOrderTableEmptyCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderTableEmptyCommand,
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

	// occupying a table never depends on its orders
	inProgress := false
	if cmd.Empty() {
		inProgress, err = uow.OrderRepository().ExistsByOrderTableIDAndStatusIn(
			ctx, table.ID(), order.InProgressStatuses())
		if err != nil {
			return nil, err
		}
	}

	if err = h.releaser.ChangeEmpty(table, cmd.Empty(), inProgress, time.Now().UTC()); err != nil {
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
