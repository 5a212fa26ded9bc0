package order

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
)

const (
	PlacedEventName        = "order.placed"
	StatusChangedEventName = "order.status_changed"
)

// PlacedEvent is raised when a new order is taken.
type PlacedEvent struct {
	ddd.BaseEvent
	OrderID      kernel.ID   `json:"order_id"`
	OrderTableID kernel.ID   `json:"order_table_id"`
	MenuIDs      []kernel.ID `json:"menu_ids"`
	TotalPrice   string      `json:"total_price"`
}

// StatusChangedEvent is raised on every status change.
type StatusChangedEvent struct {
	ddd.BaseEvent
	OrderID kernel.ID `json:"order_id"`
	From    Status    `json:"from"`
	To      Status    `json:"to"`
}

func newPlacedEvent(o *Order) PlacedEvent {
	menuIDs := make([]kernel.ID, 0, len(o.lineItems))
	for _, li := range o.lineItems {
		menuIDs = append(menuIDs, li.MenuID())
	}

	return PlacedEvent{
		BaseEvent:    ddd.NewBaseEvent(PlacedEventName, o.orderedTime),
		OrderID:      o.id,
		OrderTableID: o.orderTableID,
		MenuIDs:      menuIDs,
		TotalPrice:   o.TotalPrice().String(),
	}
}

func newStatusChangedEvent(orderID kernel.ID, from, to Status, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: ddd.NewBaseEvent(StatusChangedEventName, at),
		OrderID:   orderID,
		From:      from,
		To:        to,
	}
}
