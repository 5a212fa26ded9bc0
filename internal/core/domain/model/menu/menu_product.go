package menu

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/guard"
)

// ErrMenuProductIsNotConstructed is returned when a MenuProduct was not created through a constructor.
var ErrMenuProductIsNotConstructed = errors.New("menu product must be created via NewMenuProduct constructor")

// MenuProduct is a product of a menu together with how many units the menu contains.
// It carries the product's unit price so the menu can check its price rule without
// reaching back into the product aggregate.
type MenuProduct struct {
	productID    kernel.ID
	productPrice kernel.Price
	quantity     kernel.Quantity
	guard        guard.ConstructorGuard
}

// NewMenuProduct pairs an existing product with a quantity.
func NewMenuProduct(p *product.Product, quantity kernel.Quantity) (MenuProduct, error) {
	if err := p.Validate(); err != nil {
		return MenuProduct{}, err
	}
	return RestoreMenuProduct(p.ID(), p.Price(), quantity)
}

// RestoreMenuProduct reconstructs a MenuProduct loaded from storage.
func RestoreMenuProduct(productID kernel.ID, productPrice kernel.Price, quantity kernel.Quantity) (MenuProduct, error) {
	if err := errors.Join(
		productID.Validate(),
		productPrice.Validate(),
		quantity.Validate(),
	); err != nil {
		return MenuProduct{}, err
	}

	return MenuProduct{
		productID:    productID,
		productPrice: productPrice,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (mp MenuProduct) Validate() error {
	return mp.guard.Validate(ErrMenuProductIsNotConstructed)
}

func (mp MenuProduct) ProductID() kernel.ID {
	return mp.productID
}

func (mp MenuProduct) ProductPrice() kernel.Price {
	return mp.productPrice
}

func (mp MenuProduct) Quantity() kernel.Quantity {
	return mp.quantity
}

// TotalPrice is the product's unit price times the quantity.
func (mp MenuProduct) TotalPrice() kernel.Price {
	return mp.productPrice.Multiply(mp.quantity)
}
