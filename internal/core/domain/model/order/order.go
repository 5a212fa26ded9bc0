package order

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/ddd"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder constructor")

	// ErrOrderLineItemsAreRequired is returned when an order or an addition has no line items.
	ErrOrderLineItemsAreRequired = errs.NewInvalidArgumentError("order line items must not be empty")
)

// Order is the aggregate root for a customer order placed at a table.
//
// Order follows these invariants:
//   - Must have a valid identifier and order table reference
//   - Has at least one line item
//   - Status is always valid; COMPLETION is never left
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	ddd.AggregateRoot

	// id is the order identifier
	id kernel.ID

	// orderTableID references the table the order was placed at
	orderTableID kernel.ID

	// status is the current lifecycle state
	status Status

	// orderedTime is when the order was taken
	orderedTime time.Time

	// lineItems are owned by the order
	lineItems []OrderLineItem

	guard guard.ConstructorGuard
}

// NewOrder places an order on a table.
//
// Parameters:
//   - id: identifier allocated for the order
//   - table: the table the order is for; it must not be empty
//   - lineItems: at least one line item
//   - orderedTime: when the order was taken
//
// Returns:
//   - *Order in COOKING status with an order placed event raised
//   - error matching errs.ErrInvalidArgument when a business rule is violated
//
// Checking that the referenced menus exist is up to the caller.
func NewOrder(id kernel.ID, table *ordertable.OrderTable, lineItems []OrderLineItem, orderedTime time.Time) (*Order, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if table.IsEmpty() {
		return nil, errs.NewInvalidArgumentError(fmt.Sprintf("order table %s is empty", table.ID()))
	}

	o, err := RestoreOrder(id, table.ID(), Cooking, orderedTime, lineItems)
	if err != nil {
		return nil, err
	}

	o.RaiseDomainEvent(newPlacedEvent(o))
	return o, nil
}

// RestoreOrder reconstructs an Order loaded from storage.
func RestoreOrder(
	id kernel.ID,
	orderTableID kernel.ID,
	status Status,
	orderedTime time.Time,
	lineItems []OrderLineItem,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setOrderTableID(orderTableID),
		o.setStatus(status),
		o.setOrderedTime(orderedTime),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) OrderTableID() kernel.ID {
	return o.orderTableID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) OrderedTime() time.Time {
	return o.orderedTime
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []OrderLineItem {
	return append([]OrderLineItem(nil), o.lineItems...)
}

// TotalPrice sums the line items at their snapshotted menu prices.
func (o *Order) TotalPrice() kernel.Price {
	total := kernel.ZeroPrice()
	for _, li := range o.lineItems {
		total = total.Add(li.TotalPrice())
	}
	return total
}

// ChangeOrderStatus moves the order to the target status.
//
// This method enforces the following business rules:
//   - The target status must be valid
//   - A completed order cannot change status
//
// Example:
//
//	if err := o.ChangeOrderStatus(order.Meal, time.Now()); err != nil {
//	    // order is already completed
//	}
func (o *Order) ChangeOrderStatus(target Status, at time.Time) error {
	next, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}

	from := o.status
	o.status = next
	o.RaiseDomainEvent(newStatusChangedEvent(o.id, from, next, at))
	return nil
}

// AddOrderLineItems appends line items while the kitchen is still cooking.
func (o *Order) AddOrderLineItems(items []OrderLineItem) error {
	if o.status != Cooking {
		return errs.NewInvalidArgumentError(fmt.Sprintf(
			"line items can only be added to a %s order, order %s is %s", Cooking, o.id, o.status))
	}
	if len(items) == 0 {
		return ErrOrderLineItemsAreRequired
	}
	if err := validateLineItems(items); err != nil {
		return err
	}

	o.lineItems = append(o.lineItems, items...)
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderTableID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order table id", err)
	}
	o.orderTableID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOrderedTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("ordered time")
	}
	o.orderedTime = t
	return nil
}

func (o *Order) setLineItems(items []OrderLineItem) error {
	if len(items) == 0 {
		return ErrOrderLineItemsAreRequired
	}
	if err := validateLineItems(items); err != nil {
		return err
	}
	o.lineItems = append([]OrderLineItem(nil), items...)
	return nil
}

func validateLineItems(items []OrderLineItem) error {
	for i, li := range items {
		if err := li.Validate(); err != nil {
			return errs.NewInvalidArgumentErrorWithCause(fmt.Sprintf("order line item %d is invalid", i), err)
		}
	}
	return nil
}
