package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a new sellable product.
//
// Example:
//
//	cmd, err := NewCreateProductCommand("fried chicken", "16000")
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//	p, err := handler.Handle(ctx, cmd)
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name  kernel.Name
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateProductCommand validates the name and parses the price literal.
func NewCreateProductCommand(name string, price string) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() kernel.Name {
	return c.name
}

func (c CreateProductCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateProductCommand) setName(name string) error {
	n, err := kernel.NewName(name)
	if err != nil {
		return err
	}
	c.name = n
	return nil
}

func (c *CreateProductCommand) setPrice(price string) error {
	p, err := kernel.ParsePrice(price)
	if err != nil {
		return err
	}
	c.price = p
	return nil
}
