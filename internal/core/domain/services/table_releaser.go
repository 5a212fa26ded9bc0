package services

import (
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"
)

// TableReleaser is a domain service that changes a table's empty flag while
// taking the table's orders into account.
//
// Business rules:
//   - A table with an order in COOKING or MEAL cannot be emptied
//   - A grouped table cannot be emptied (enforced by the table itself)
//   - Marking a table occupied never depends on its orders
type TableReleaser struct{}

// NewTableReleaser creates a new TableReleaser instance.
func NewTableReleaser() TableReleaser {
	return TableReleaser{}
}

// ChangeEmpty applies the new empty flag.
//
// Parameters:
//   - table: the table to change (must be valid)
//   - empty: the requested flag
//   - hasOrderInProgress: whether any order of this table is COOKING or MEAL
//   - at: when the change happens
func (TableReleaser) ChangeEmpty(table *ordertable.OrderTable, empty bool, hasOrderInProgress bool, at time.Time) error {
	if err := table.Validate(); err != nil {
		return err
	}

	if empty && hasOrderInProgress {
		return errs.NewInvalidArgumentError(fmt.Sprintf(
			"order table %s has an order in progress and cannot be emptied", table.ID()))
	}

	return table.ChangeEmpty(empty, at)
}
