package commands

import (
	"errors"

	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderTableCommandIsNotConstructed = errors.New(
	"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
)

// CreateOrderTableCommand registers a table. Guest count rules are enforced by
// the aggregate.
type CreateOrderTableCommand struct {
	numberOfGuests int
	empty          bool

	guard guard.ConstructorGuard
}

func NewCreateOrderTableCommand(numberOfGuests int, empty bool) CreateOrderTableCommand {
	return CreateOrderTableCommand{
		numberOfGuests: numberOfGuests,
		empty:          empty,
		guard:          guard.NewConstructorGuard(),
	}
}

func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

func (c CreateOrderTableCommand) NumberOfGuests() int {
	return c.numberOfGuests
}

func (c CreateOrderTableCommand) Empty() bool {
	return c.empty
}
