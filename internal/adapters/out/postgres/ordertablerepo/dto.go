// Package ordertablerepo persists order tables.
package ordertablerepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
)

// OrderTableDTO is the order_tables row. TableGroupID is NULL for ungrouped tables.
type OrderTableDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement:false"`
	TableGroupID   *int64 `gorm:"index"`
	NumberOfGuests int    `gorm:"not null"`
	Empty          bool   `gorm:"not null"`
}

func (OrderTableDTO) TableName() string {
	return "order_tables"
}

func fromDomain(t *ordertable.OrderTable) OrderTableDTO {
	var groupID *int64
	if id := t.TableGroupID(); id != nil {
		raw := id.Int64()
		groupID = &raw
	}

	return OrderTableDTO{
		ID:             t.ID().Int64(),
		TableGroupID:   groupID,
		NumberOfGuests: t.NumberOfGuests(),
		Empty:          t.IsEmpty(),
	}
}

func toDomain(dto OrderTableDTO) (*ordertable.OrderTable, error) {
	var groupID *kernel.ID
	if dto.TableGroupID != nil {
		id := kernel.ID(*dto.TableGroupID)
		groupID = &id
	}

	return ordertable.RestoreOrderTable(kernel.ID(dto.ID), groupID, dto.NumberOfGuests, dto.Empty)
}
