// Package ordertable provides the OrderTable aggregate: a physical table with a
// guest count, an empty flag and an optional membership in a table group.
//
// Key business rules:
//   - The number of guests is never negative
//   - A table in a group cannot be marked empty
//   - Guests can only be seated at a non-empty table
//   - A table belongs to at most one group at a time
//
// Emptying a table that may still have orders in progress is coordinated by the
// domain services package, which knows about orders.
package ordertable

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrOrderTableIsNotConstructed is returned when an OrderTable was not created through a constructor.
var ErrOrderTableIsNotConstructed = errors.New("order table must be created via NewOrderTable constructor")

// OrderTable is a table in the restaurant.
type OrderTable struct {
	ddd.AggregateRoot

	id             kernel.ID
	tableGroupID   *kernel.ID
	numberOfGuests int
	empty          bool
	guard          guard.ConstructorGuard
}

// NewOrderTable creates an ungrouped OrderTable.
func NewOrderTable(id kernel.ID, numberOfGuests int, empty bool) (*OrderTable, error) {
	return RestoreOrderTable(id, nil, numberOfGuests, empty)
}

// RestoreOrderTable reconstructs an OrderTable loaded from storage. A nil
// tableGroupID means the table is not grouped.
func RestoreOrderTable(id kernel.ID, tableGroupID *kernel.ID, numberOfGuests int, empty bool) (*OrderTable, error) {
	t := &OrderTable{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setTableGroupID(tableGroupID),
		t.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *OrderTable) Validate() error {
	if t == nil {
		return ErrOrderTableIsNotConstructed
	}
	return t.guard.Validate(ErrOrderTableIsNotConstructed)
}

func (t *OrderTable) ID() kernel.ID {
	return t.id
}

// TableGroupID returns the group the table belongs to, or nil.
func (t *OrderTable) TableGroupID() *kernel.ID {
	if t.tableGroupID == nil {
		return nil
	}
	id := *t.tableGroupID
	return &id
}

func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

func (t *OrderTable) IsEmpty() bool {
	return t.empty
}

func (t *OrderTable) IsGrouped() bool {
	return t.tableGroupID != nil
}

// ChangeEmpty sets the empty flag. A grouped table cannot be emptied. Whether the
// table still has orders in progress is not checked here.
func (t *OrderTable) ChangeEmpty(empty bool, at time.Time) error {
	if empty && t.IsGrouped() {
		return errs.NewInvalidArgumentError(fmt.Sprintf(
			"order table %s belongs to table group %s and cannot be emptied", t.id, *t.tableGroupID))
	}

	wasEmpty := t.empty
	t.empty = empty
	if empty && !wasEmpty {
		t.RaiseDomainEvent(NewEmptiedEvent(t.id, at))
	}
	return nil
}

// ChangeNumberOfGuests seats guests at an occupied table.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewInvalidArgumentError(fmt.Sprintf("number of guests %d is negative", numberOfGuests))
	}
	if t.empty {
		return errs.NewInvalidArgumentError(fmt.Sprintf("order table %s is empty", t.id))
	}

	t.numberOfGuests = numberOfGuests
	return nil
}

// ValidateGroupable reports whether the table can join a new table group: it
// must be empty and not already grouped.
func (t *OrderTable) ValidateGroupable() error {
	if t.IsGrouped() {
		return errs.NewInvalidArgumentError(fmt.Sprintf(
			"order table %s already belongs to table group %s", t.id, *t.tableGroupID))
	}
	if !t.empty {
		return errs.NewInvalidArgumentError(fmt.Sprintf("order table %s is not empty", t.id))
	}
	return nil
}

// JoinGroup assigns the table to a group and marks it occupied.
func (t *OrderTable) JoinGroup(tableGroupID kernel.ID) error {
	if err := tableGroupID.Validate(); err != nil {
		return err
	}
	if err := t.ValidateGroupable(); err != nil {
		return err
	}

	t.tableGroupID = &tableGroupID
	t.empty = false
	return nil
}

// LeaveGroup clears the group membership. The empty flag is left as is.
func (t *OrderTable) LeaveGroup() {
	t.tableGroupID = nil
}

func (t *OrderTable) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *OrderTable) setTableGroupID(id *kernel.ID) error {
	if id == nil {
		t.tableGroupID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("table group id", err)
	}
	v := *id
	t.tableGroupID = &v
	return nil
}

func (t *OrderTable) setNumberOfGuests(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("number of guests", n, 0, "unbounded")
	}
	t.numberOfGuests = n
	return nil
}
