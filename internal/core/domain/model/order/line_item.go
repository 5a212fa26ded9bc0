package order

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/guard"
)

// ErrOrderLineItemIsNotConstructed is returned when an OrderLineItem was not created through a constructor.
var ErrOrderLineItemIsNotConstructed = errors.New("order line item must be created via NewOrderLineItem constructor")

// OrderLineItem is a menu ordered in some quantity. The menu's name and price are
// copied at ordering time.
type OrderLineItem struct {
	menuID    kernel.ID
	menuName  kernel.Name
	menuPrice kernel.Price
	quantity  kernel.Quantity
	guard     guard.ConstructorGuard
}

// NewOrderLineItem snapshots the menu and pairs it with a quantity.
func NewOrderLineItem(m *menu.Menu, quantity kernel.Quantity) (OrderLineItem, error) {
	if err := m.Validate(); err != nil {
		return OrderLineItem{}, err
	}
	return RestoreOrderLineItem(m.ID(), m.Name(), m.Price(), quantity)
}

// RestoreOrderLineItem reconstructs a line item loaded from storage.
func RestoreOrderLineItem(
	menuID kernel.ID,
	menuName kernel.Name,
	menuPrice kernel.Price,
	quantity kernel.Quantity,
) (OrderLineItem, error) {
	if err := errors.Join(
		menuID.Validate(),
		menuName.Validate(),
		menuPrice.Validate(),
		quantity.Validate(),
	); err != nil {
		return OrderLineItem{}, err
	}

	return OrderLineItem{
		menuID:    menuID,
		menuName:  menuName,
		menuPrice: menuPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (li OrderLineItem) Validate() error {
	return li.guard.Validate(ErrOrderLineItemIsNotConstructed)
}

func (li OrderLineItem) MenuID() kernel.ID {
	return li.menuID
}

func (li OrderLineItem) MenuName() kernel.Name {
	return li.menuName
}

func (li OrderLineItem) MenuPrice() kernel.Price {
	return li.menuPrice
}

func (li OrderLineItem) Quantity() kernel.Quantity {
	return li.quantity
}

// TotalPrice is the snapshotted menu price times the quantity.
func (li OrderLineItem) TotalPrice() kernel.Price {
	return li.menuPrice.Multiply(li.quantity)
}
