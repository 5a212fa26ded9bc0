package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeOrderTableEmptyCommandIsNotConstructed = errors.New(
	"ChangeOrderTableEmptyCommand must be created via NewChangeOrderTableEmptyCommand constructor",
)

// ChangeOrderTableEmptyCommand releases or occupies a table.
type ChangeOrderTableEmptyCommand struct {
	orderTableID kernel.ID
	empty        bool

	guard guard.ConstructorGuard
}

func NewChangeOrderTableEmptyCommand(orderTableID int64, empty bool) (ChangeOrderTableEmptyCommand, error) {
	if err := kernel.ID(orderTableID).Validate(); err != nil {
		return ChangeOrderTableEmptyCommand{}, errs.NewValueIsRequiredErrorWithCause("order table id", err)
	}

	return ChangeOrderTableEmptyCommand{
		orderTableID: kernel.ID(orderTableID),
		empty:        empty,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderTableEmptyCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderTableEmptyCommandIsNotConstructed)
}

func (c ChangeOrderTableEmptyCommand) OrderTableID() kernel.ID {
	return c.orderTableID
}

func (c ChangeOrderTableEmptyCommand) Empty() bool {
	return c.empty
}
