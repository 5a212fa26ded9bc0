package tablegroup

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
)

const (
	CreatedEventName   = "table_group.created"
	UngroupedEventName = "table_group.ungrouped"
)

type CreatedEvent struct {
	ddd.BaseEvent
	TableGroupID  kernel.ID   `json:"table_group_id"`
	OrderTableIDs []kernel.ID `json:"order_table_ids"`
}

type UngroupedEvent struct {
	ddd.BaseEvent
	TableGroupID  kernel.ID   `json:"table_group_id"`
	OrderTableIDs []kernel.ID `json:"order_table_ids"`
}

func newCreatedEvent(g *TableGroup) CreatedEvent {
	return CreatedEvent{
		BaseEvent:     ddd.NewBaseEvent(CreatedEventName, g.createdDate),
		TableGroupID:  g.id,
		OrderTableIDs: g.OrderTableIDs(),
	}
}

func newUngroupedEvent(id kernel.ID, released []kernel.ID, at time.Time) UngroupedEvent {
	return UngroupedEvent{
		BaseEvent:     ddd.NewBaseEvent(UngroupedEventName, at),
		TableGroupID:  id,
		OrderTableIDs: released,
	}
}
