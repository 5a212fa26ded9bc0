package services

import (
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/tablegroup"
	"kitchenpos/internal/pkg/errs"
)

// TableUngrouper is a domain service that dissolves a table group.
//
// Business rules:
//   - No order of any member table may be COOKING or MEAL
//   - Either every member table is released or none is
//   - A group with no member tables is left as is
//
// Example usage:
//
//	ungrouper := services.NewTableUngrouper()
//	if err := ungrouper.Ungroup(group, tables, orders, time.Now()); err != nil {
//	    // a member table still has an order in progress
//	}
type TableUngrouper struct{}

// NewTableUngrouper creates a new TableUngrouper instance.
func NewTableUngrouper() TableUngrouper {
	return TableUngrouper{}
}

// Ungroup releases the member tables of the group.
//
// Parameters:
//   - group: the group to dissolve
//   - tables: the group's member tables
//   - orders: every order placed on the member tables
//   - at: when the group is dissolved
func (TableUngrouper) Ungroup(
	group *tablegroup.TableGroup,
	tables []*ordertable.OrderTable,
	orders []*order.Order,
	at time.Time,
) error {
	if err := group.Validate(); err != nil {
		return err
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if o.Status().IsInProgress() {
			return errs.NewInvalidArgumentError(fmt.Sprintf(
				"order %s on order table %s is %s, table group %s cannot be ungrouped",
				o.ID(), o.OrderTableID(), o.Status(), group.ID()))
		}
	}

	return group.Ungroup(tables, at)
}
