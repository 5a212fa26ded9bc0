package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrMenuIsNotConstructed is returned when a Menu was not created through NewMenu or RestoreMenu.
var ErrMenuIsNotConstructed = errors.New("menu must be created via NewMenu constructor")

// Menu is a sellable bundle of products.
//
// Invariants:
//   - price ≤ Σ(product price × quantity) over menu products, checked whenever products are added
//   - menu group reference is always set
type Menu struct {
	id           kernel.ID
	name         kernel.Name
	price        kernel.Price
	menuGroupID  kernel.ID
	menuProducts []MenuProduct
	guard        guard.ConstructorGuard
}

// NewMenu creates a Menu without menu products. Products are attached with
// AddMenuProducts, which enforces the price rule.
//
// Example:
//
//	m, err := menu.NewMenu(id, name, price, groupID)
//	if err != nil {
//	    return err
//	}
//	if err := m.AddMenuProducts(items); err != nil {
//	    // price exceeds the products' total
//	}
func NewMenu(id kernel.ID, name kernel.Name, price kernel.Price, menuGroupID kernel.ID) (*Menu, error) {
	m := &Menu{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setMenuGroupID(menuGroupID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenu reconstructs a Menu loaded from storage. The price rule is not
// re-checked: stored menus satisfied it when their products were added.
func RestoreMenu(
	id kernel.ID,
	name kernel.Name,
	price kernel.Price,
	menuGroupID kernel.ID,
	menuProducts []MenuProduct,
) (*Menu, error) {
	m, err := NewMenu(id, name, price, menuGroupID)
	if err != nil {
		return nil, err
	}

	for i, mp := range menuProducts {
		if err := mp.Validate(); err != nil {
			return nil, fmt.Errorf("menu product %d: %w", i, err)
		}
	}
	m.menuProducts = append([]MenuProduct(nil), menuProducts...)

	return m, nil
}

func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) ID() kernel.ID {
	return m.id
}

func (m *Menu) Name() kernel.Name {
	return m.name
}

func (m *Menu) Price() kernel.Price {
	return m.price
}

func (m *Menu) MenuGroupID() kernel.ID {
	return m.menuGroupID
}

// MenuProducts returns a copy of the menu's products.
func (m *Menu) MenuProducts() []MenuProduct {
	return append([]MenuProduct(nil), m.menuProducts...)
}

// ProductsTotalPrice sums price × quantity over the current menu products.
func (m *Menu) ProductsTotalPrice() kernel.Price {
	return sumMenuProducts(m.menuProducts)
}

// AddMenuProducts attaches products to the menu. The whole batch is rejected with
// an invalid argument error when the menu price would exceed the sum of the
// existing and added products; in that case the menu is left unchanged.
func (m *Menu) AddMenuProducts(items []MenuProduct) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewInvalidArgumentErrorWithCause(fmt.Sprintf("menu product %d is invalid", i), err)
		}
	}

	total := m.ProductsTotalPrice().Add(sumMenuProducts(items))
	if m.price.IsGreaterThan(total) {
		return errs.NewInvalidArgumentError(fmt.Sprintf(
			"menu price %s exceeds the sum of its product prices %s", m.price, total))
	}

	m.menuProducts = append(m.menuProducts, items...)
	return nil
}

func (m *Menu) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name kernel.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Menu) setMenuGroupID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu group id", err)
	}
	m.menuGroupID = id
	return nil
}

func sumMenuProducts(items []MenuProduct) kernel.Price {
	total := kernel.ZeroPrice()
	for _, item := range items {
		total = total.Add(item.TotalPrice())
	}
	return total
}
