// Package tablegrouprepo persists table groups. Membership is not stored here:
// it is the table_group_id column of order_tables.
package tablegrouprepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/tablegroup"
)

type TableGroupDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false"`
	CreatedDate time.Time `gorm:"not null"`
}

func (TableGroupDTO) TableName() string {
	return "table_groups"
}

func fromDomain(g *tablegroup.TableGroup) TableGroupDTO {
	return TableGroupDTO{
		ID:          g.ID().Int64(),
		CreatedDate: g.CreatedDate(),
	}
}

func toDomain(dto TableGroupDTO, memberIDs []int64) (*tablegroup.TableGroup, error) {
	ids := make([]kernel.ID, len(memberIDs))
	for i, id := range memberIDs {
		ids[i] = kernel.ID(id)
	}

	return tablegroup.RestoreTableGroup(kernel.ID(dto.ID), dto.CreatedDate.UTC(), ids)
}
