package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrAddOrderLineItemsCommandIsNotConstructed = errors.New(
	"AddOrderLineItemsCommand must be created via NewAddOrderLineItemsCommand constructor",
)

// AddOrderLineItemsCommand adds menus to an order that is still cooking.
type AddOrderLineItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	lines   []orderLine

	guard guard.ConstructorGuard
}

func NewAddOrderLineItemsCommand(orderID int64, lineItems []OrderLineItemInput) (AddOrderLineItemsCommand, error) {
	cmd := AddOrderLineItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLines(lineItems),
	); err != nil {
		return AddOrderLineItemsCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderLineItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineItemsCommandIsNotConstructed)
}

func (c AddOrderLineItemsCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *AddOrderLineItemsCommand) setOrderID(id int64) error {
	if err := kernel.ID(id).Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = kernel.ID(id)
	return nil
}

func (c *AddOrderLineItemsCommand) setLines(inputs []OrderLineItemInput) error {
	lines, err := parseOrderLines(inputs)
	if err != nil {
		return err
	}
	c.lines = lines
	return nil
}
