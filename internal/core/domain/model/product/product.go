// Package product holds the Product aggregate: a sellable item with a name and a
// unit price. Products are immutable once created.
package product

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("product must be created via NewProduct constructor")

// Product is a sellable item.
type Product struct {
	id    kernel.ID
	name  kernel.Name
	price kernel.Price
	guard guard.ConstructorGuard
}

// NewProduct creates a Product with a freshly allocated identifier.
//
// Example:
//
//	name, _ := kernel.NewName("fried chicken")
//	price, _ := kernel.ParsePrice("16000")
//	p, err := product.NewProduct(id, name, price)
func NewProduct(id kernel.ID, name kernel.Name, price kernel.Price) (*Product, error) {
	return build(id, name, price)
}

// RestoreProduct reconstructs a Product loaded from storage.
func RestoreProduct(id kernel.ID, name kernel.Name, price kernel.Price) (*Product, error) {
	return build(id, name, price)
}

func build(id kernel.ID, name kernel.Name, price kernel.Price) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through its constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.ID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() kernel.Name {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() kernel.Price {
	return p.price
}

func (p *Product) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name kernel.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
