// Package productrepo persists products.
package productrepo

import (
	"github.com/shopspring/decimal"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
)

// ProductDTO is the products row.
type ProductDTO struct {
	ID    int64           `gorm:"primaryKey;autoIncrement:false"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:numeric(19,2);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID().Int64(),
		Name:  p.Name().Value(),
		Price: p.Price().Decimal(),
	}
}

// ToDomain restores a product row. Menu persistence uses it for preloaded products.
func ToDomain(dto ProductDTO) (*product.Product, error) {
	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(kernel.ID(dto.ID), name, price)
}
