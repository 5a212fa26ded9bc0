// Package orderrepo persists orders and their line items.
package orderrepo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// OrderDTO is the orders row. Status is stored by name.
type OrderDTO struct {
	ID           int64              `gorm:"primaryKey;autoIncrement:false"`
	OrderTableID int64              `gorm:"not null;index"`
	Status       string             `gorm:"type:varchar(16);not null;index"`
	OrderedTime  time.Time          `gorm:"not null"`
	LineItems    []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO keeps the menu name and price as they were when the order was taken.
type OrderLineItemDTO struct {
	Seq       int64           `gorm:"primaryKey"`
	OrderID   int64           `gorm:"not null;index"`
	MenuID    int64           `gorm:"not null"`
	MenuName  string          `gorm:"type:varchar(255);not null"`
	MenuPrice decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Quantity  int64           `gorm:"not null"`
}

func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderLineItemDTO, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		items = append(items, OrderLineItemDTO{
			OrderID:   o.ID().Int64(),
			MenuID:    li.MenuID().Int64(),
			MenuName:  li.MenuName().Value(),
			MenuPrice: li.MenuPrice().Decimal(),
			Quantity:  li.Quantity().Value(),
		})
	}

	return OrderDTO{
		ID:           o.ID().Int64(),
		OrderTableID: o.OrderTableID().Int64(),
		Status:       o.Status().String(),
		OrderedTime:  o.OrderedTime(),
		LineItems:    items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderLineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		li, liErr := lineItemToDomain(liDTO)
		if liErr != nil {
			return nil, fmt.Errorf("order %d: %w", dto.ID, liErr)
		}
		items = append(items, li)
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.OrderTableID),
		status,
		dto.OrderedTime.UTC(),
		items,
	)
}

func lineItemToDomain(dto OrderLineItemDTO) (order.OrderLineItem, error) {
	name, err := kernel.NewName(dto.MenuName)
	if err != nil {
		return order.OrderLineItem{}, err
	}

	price, err := kernel.NewPrice(dto.MenuPrice)
	if err != nil {
		return order.OrderLineItem{}, err
	}

	q, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return order.OrderLineItem{}, err
	}

	return order.RestoreOrderLineItem(kernel.ID(dto.MenuID), name, price, q)
}
