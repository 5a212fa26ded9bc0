package ordertable

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
)

// EmptiedEventName is published when a table is released.
const EmptiedEventName = "order_table.emptied"

// EmptiedEvent records that a table became empty.
type EmptiedEvent struct {
	ddd.BaseEvent
	OrderTableID kernel.ID `json:"order_table_id"`
}

func NewEmptiedEvent(orderTableID kernel.ID, at time.Time) EmptiedEvent {
	return EmptiedEvent{
		BaseEvent:    ddd.NewBaseEvent(EmptiedEventName, at),
		OrderTableID: orderTableID,
	}
}
