package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// MenuProductInput is one requested menu product: which product and how many.
type MenuProductInput struct {
	ProductID int64
	Quantity  int64
}

type menuProductLine struct {
	productID kernel.ID
	quantity  kernel.Quantity
}

// CreateMenuCommand registers a menu in a menu group, optionally with products.
//
// Example:
//
//	cmd, err := NewCreateMenuCommand("two chickens", "19000", groupID, []MenuProductInput{
//	    {ProductID: chickenID, Quantity: 2},
//	})
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	name         kernel.Name
	price        kernel.Price
	menuGroupID  kernel.ID
	menuProducts []menuProductLine

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand validates the request shape. Whether the group and the
// products exist is checked by the handler.
func NewCreateMenuCommand(
	name string,
	price string,
	menuGroupID int64,
	menuProducts []MenuProductInput,
) (CreateMenuCommand, error) {
	cmd := CreateMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setMenuGroupID(menuGroupID),
		cmd.setMenuProducts(menuProducts),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) Name() kernel.Name {
	return c.name
}

func (c CreateMenuCommand) Price() kernel.Price {
	return c.price
}

func (c CreateMenuCommand) MenuGroupID() kernel.ID {
	return c.menuGroupID
}

// ProductIDs lists the requested products in request order.
func (c CreateMenuCommand) ProductIDs() []kernel.ID {
	ids := make([]kernel.ID, len(c.menuProducts))
	for i, mp := range c.menuProducts {
		ids[i] = mp.productID
	}
	return ids
}

func (c *CreateMenuCommand) setName(name string) error {
	n, err := kernel.NewName(name)
	if err != nil {
		return err
	}
	c.name = n
	return nil
}

func (c *CreateMenuCommand) setPrice(price string) error {
	p, err := kernel.ParsePrice(price)
	if err != nil {
		return err
	}
	c.price = p
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(id int64) error {
	if err := kernel.ID(id).Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu group id", err)
	}
	c.menuGroupID = kernel.ID(id)
	return nil
}

func (c *CreateMenuCommand) setMenuProducts(inputs []MenuProductInput) error {
	lines := make([]menuProductLine, 0, len(inputs))
	for i, in := range inputs {
		if err := kernel.ID(in.ProductID).Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("menu product %d product id", i), err)
		}
		q, err := kernel.NewQuantity(in.Quantity)
		if err != nil {
			return err
		}
		lines = append(lines, menuProductLine{productID: kernel.ID(in.ProductID), quantity: q})
	}
	c.menuProducts = lines
	return nil
}
