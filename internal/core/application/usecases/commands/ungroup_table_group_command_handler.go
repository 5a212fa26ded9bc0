package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/services"
)

// UngroupTableGroupCommandHandler releases every member table of a group, or
// none of them when any member still has an order in progress.
type UngroupTableGroupCommandHandler struct {
	uowFactory TableUoWFactory
	ungrouper  services.TableUngrouper
}

func NewUngroupTableGroupCommandHandler(uowFactory TableUoWFactory) UngroupTableGroupCommandHandler {
	return UngroupTableGroupCommandHandler{
		uowFactory: uowFactory,
		ungrouper:  services.NewTableUngrouper(),
	}
}

func (h UngroupTableGroupCommandHandler) Handle(ctx context.Context, cmd UngroupTableGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.OrderTableRepository()

	group, err := uow.TableGroupRepository().Get(ctx, cmd.TableGroupID())
	if err != nil {
		return err
	}

	tables, err := tableRepo.FindAllByTableGroupID(ctx, group.ID())
	if err != nil {
		return err
	}

	orders, err := uow.OrderRepository().FindByTableGroupID(ctx, group.ID())
	if err != nil {
		return err
	}

	if err = h.ungrouper.Ungroup(group, tables, orders, time.Now().UTC()); err != nil {
		return err
	}

	for _, table := range tables {
		if err = tableRepo.Update(ctx, table); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
