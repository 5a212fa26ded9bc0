package commands

import (
	"context"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/tablegroup"
	"kitchenpos/internal/pkg/errs"
)

// CreateTableGroupCommandHandler groups tables. Every listed table must exist;
// listing the same table twice counts as a missing table.
type CreateTableGroupCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewCreateTableGroupCommandHandler(uowFactory TableUoWFactory) CreateTableGroupCommandHandler {
	return CreateTableGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateTableGroupCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTableGroupCommand,
) (*tablegroup.TableGroup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ids := cmd.OrderTableIDs()
	if len(ids) < tablegroup.MinOrderTables {
		return nil, errs.NewInvalidArgumentError(fmt.Sprintf(
			"table group needs at least %d order tables, got %d", tablegroup.MinOrderTables, len(ids)))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.OrderTableRepository()
	groupRepo := uow.TableGroupRepository()

	tables, err := tableRepo.FindAllByIDIn(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tables) != len(ids) {
		return nil, errs.NewInvalidArgumentError(fmt.Sprintf(
			"%d order tables requested, %d found", len(ids), len(tables)))
	}

	id, err := groupRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	group, err := tablegroup.NewTableGroup(id, tables, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = groupRepo.Add(ctx, group); err != nil {
		return nil, err
	}

	for _, table := range tables {
		if err = tableRepo.Update(ctx, table); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return group, nil
}
