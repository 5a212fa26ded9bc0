package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order on a table.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(tableID, []OrderLineItemInput{
//	    {MenuID: menuID, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s is %s", o.ID(), o.Status())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderTableID kernel.ID
	lines        []orderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and quantities. An empty list of
// line items is accepted here and rejected by the handler like any other
// business rule.
func NewCreateOrderCommand(orderTableID int64, lineItems []OrderLineItemInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderTableID(orderTableID),
		cmd.setLines(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderTableID() kernel.ID {
	return c.orderTableID
}

func (c *CreateOrderCommand) setOrderTableID(id int64) error {
	if err := kernel.ID(id).Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order table id", err)
	}
	c.orderTableID = kernel.ID(id)
	return nil
}

func (c *CreateOrderCommand) setLines(inputs []OrderLineItemInput) error {
	lines, err := parseOrderLines(inputs)
	if err != nil {
		return err
	}
	c.lines = lines
	return nil
}
