package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
	"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
)

// ChangeNumberOfGuestsCommand seats a number of guests at a table. A negative
// count is rejected by the aggregate so that the rule lives in one place.
type ChangeNumberOfGuestsCommand struct {
	orderTableID   kernel.ID
	numberOfGuests int

	guard guard.ConstructorGuard
}

func NewChangeNumberOfGuestsCommand(orderTableID int64, numberOfGuests int) (ChangeNumberOfGuestsCommand, error) {
	if err := kernel.ID(orderTableID).Validate(); err != nil {
		return ChangeNumberOfGuestsCommand{}, errs.NewValueIsRequiredErrorWithCause("order table id", err)
	}

	return ChangeNumberOfGuestsCommand{
		orderTableID:   kernel.ID(orderTableID),
		numberOfGuests: numberOfGuests,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

func (c ChangeNumberOfGuestsCommand) OrderTableID() kernel.ID {
	return c.orderTableID
}

func (c ChangeNumberOfGuestsCommand) NumberOfGuests() int {
	return c.numberOfGuests
}
