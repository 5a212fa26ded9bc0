// Package menurepo persists menus together with their menu products.
package menurepo

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kitchenpos/internal/adapters/out/postgres/productrepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuDTO is the menus row. Menu products are stored in menu_products.
type MenuDTO struct {
	ID           int64            `gorm:"primaryKey;autoIncrement:false"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal  `gorm:"type:numeric(19,2);not null"`
	MenuGroupID  int64            `gorm:"not null;index"`
	MenuProducts []MenuProductDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

// MenuProductDTO links a menu to a product. The product row is preloaded to
// restore the product price the menu price is checked against.
type MenuProductDTO struct {
	Seq       int64                  `gorm:"primaryKey"`
	MenuID    int64                  `gorm:"not null;index"`
	ProductID int64                  `gorm:"not null;index"`
	Product   productrepo.ProductDTO `gorm:"foreignKey:ProductID;references:ID"`
	Quantity  int64                  `gorm:"not null"`
}

func (MenuProductDTO) TableName() string {
	return "menu_products"
}

func fromDomain(m *menu.Menu) MenuDTO {
	products := make([]MenuProductDTO, 0, len(m.MenuProducts()))
	for _, mp := range m.MenuProducts() {
		products = append(products, MenuProductDTO{
			MenuID:    m.ID().Int64(),
			ProductID: mp.ProductID().Int64(),
			Quantity:  mp.Quantity().Value(),
		})
	}

	return MenuDTO{
		ID:           m.ID().Int64(),
		Name:         m.Name().Value(),
		Price:        m.Price().Decimal(),
		MenuGroupID:  m.MenuGroupID().Int64(),
		MenuProducts: products,
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	products := make([]menu.MenuProduct, 0, len(dto.MenuProducts))
	for _, mpDTO := range dto.MenuProducts {
		mp, mpErr := menuProductToDomain(mpDTO)
		if mpErr != nil {
			return nil, fmt.Errorf("menu %d: %w", dto.ID, mpErr)
		}
		products = append(products, mp)
	}

	return menu.RestoreMenu(kernel.ID(dto.ID), name, price, kernel.ID(dto.MenuGroupID), products)
}

func menuProductToDomain(dto MenuProductDTO) (menu.MenuProduct, error) {
	p, err := productrepo.ToDomain(dto.Product)
	if err != nil {
		return menu.MenuProduct{}, err
	}

	q, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return menu.MenuProduct{}, err
	}

	return menu.NewMenuProduct(p, q)
}
