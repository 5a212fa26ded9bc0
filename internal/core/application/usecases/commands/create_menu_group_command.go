package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuGroupCommandIsNotConstructed = errors.New(
	"CreateMenuGroupCommand must be created via NewCreateMenuGroupCommand constructor",
)

// CreateMenuGroupCommand registers a new menu category.
type CreateMenuGroupCommand struct {
	name  kernel.Name
	guard guard.ConstructorGuard
}

func NewCreateMenuGroupCommand(name string) (CreateMenuGroupCommand, error) {
	n, err := kernel.NewName(name)
	if err != nil {
		return CreateMenuGroupCommand{}, err
	}

	return CreateMenuGroupCommand{
		name:  n,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuGroupCommandIsNotConstructed)
}

func (c CreateMenuGroupCommand) Name() kernel.Name {
	return c.name
}
