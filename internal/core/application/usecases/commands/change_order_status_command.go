package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to another status by name.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand parses the status name ("COOKING", "MEAL", "COMPLETION").
func NewChangeOrderStatusCommand(orderID int64, status string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(id int64) error {
	if err := kernel.ID(id).Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = kernel.ID(id)
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status string) error {
	s, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = s
	return nil
}
