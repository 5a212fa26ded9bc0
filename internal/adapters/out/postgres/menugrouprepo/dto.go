// Package menugrouprepo persists menu groups.
package menugrouprepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
)

type MenuGroupDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (MenuGroupDTO) TableName() string {
	return "menu_groups"
}

func fromDomain(g *menugroup.MenuGroup) MenuGroupDTO {
	return MenuGroupDTO{
		ID:   g.ID().Int64(),
		Name: g.Name().Value(),
	}
}

func toDomain(dto MenuGroupDTO) (*menugroup.MenuGroup, error) {
	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}

	return menugroup.RestoreMenuGroup(kernel.ID(dto.ID), name)
}
