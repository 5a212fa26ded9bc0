package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrUngroupTableGroupCommandIsNotConstructed = errors.New(
	"UngroupTableGroupCommand must be created via NewUngroupTableGroupCommand constructor",
)

// UngroupTableGroupCommand dissolves a table group.
type UngroupTableGroupCommand struct {
	tableGroupID kernel.ID

	guard guard.ConstructorGuard
}

func NewUngroupTableGroupCommand(tableGroupID int64) (UngroupTableGroupCommand, error) {
	if err := kernel.ID(tableGroupID).Validate(); err != nil {
		return UngroupTableGroupCommand{}, errs.NewValueIsRequiredErrorWithCause("table group id", err)
	}

	return UngroupTableGroupCommand{
		tableGroupID: kernel.ID(tableGroupID),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UngroupTableGroupCommand) Validate() error {
	return c.guard.Validate(ErrUngroupTableGroupCommandIsNotConstructed)
}

func (c UngroupTableGroupCommand) TableGroupID() kernel.ID {
	return c.tableGroupID
}
