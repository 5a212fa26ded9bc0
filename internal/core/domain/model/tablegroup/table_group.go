// Package tablegroup provides the TableGroup aggregate, which seats one party
// across two or more order tables.
//
// Forming a group validates every table before touching any of them: either all
// tables join the group and become occupied, or none change.
package tablegroup

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/ddd"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// MinOrderTables is the smallest number of tables a group can be formed from.
const MinOrderTables = 2

// ErrTableGroupIsNotConstructed is returned when a TableGroup was not created through a constructor.
var ErrTableGroupIsNotConstructed = errors.New("table group must be created via NewTableGroup constructor")

// TableGroup joins order tables for one party.
type TableGroup struct {
	ddd.AggregateRoot

	id            kernel.ID
	createdDate   time.Time
	orderTableIDs []kernel.ID
	guard         guard.ConstructorGuard
}

// NewTableGroup forms a group from the given tables.
//
// Business Rules:
//   - At least MinOrderTables distinct tables
//   - Every table is empty and not in another group
//
// On success every table is assigned to the new group and marked occupied, and a
// table group created event is raised. On failure no table is modified.
func NewTableGroup(id kernel.ID, tables []*ordertable.OrderTable, createdDate time.Time) (*TableGroup, error) {
	if err := validateTables(tables); err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.ID())
	}

	g, err := RestoreTableGroup(id, createdDate, ids)
	if err != nil {
		return nil, err
	}

	// JoinGroup checks the group id and that the table is empty and ungrouped.
	// Both were verified above, so the loop never stops part way.
	for _, t := range tables {
		if err := t.JoinGroup(g.id); err != nil {
			return nil, err
		}
	}

	g.RaiseDomainEvent(newCreatedEvent(g))
	return g, nil
}

// RestoreTableGroup reconstructs a TableGroup loaded from storage.
func RestoreTableGroup(id kernel.ID, createdDate time.Time, orderTableIDs []kernel.ID) (*TableGroup, error) {
	g := &TableGroup{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		g.setID(id),
		g.setCreatedDate(createdDate),
		g.setOrderTableIDs(orderTableIDs),
	); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *TableGroup) Validate() error {
	if g == nil {
		return ErrTableGroupIsNotConstructed
	}
	return g.guard.Validate(ErrTableGroupIsNotConstructed)
}

func (g *TableGroup) ID() kernel.ID {
	return g.id
}

func (g *TableGroup) CreatedDate() time.Time {
	return g.createdDate
}

// OrderTableIDs returns the ids of the member tables.
func (g *TableGroup) OrderTableIDs() []kernel.ID {
	return slices.Clone(g.orderTableIDs)
}

// Ungroup releases the given member tables. Open orders on those tables must be
// checked beforehand; see services.TableUngrouper. A group without members is
// left untouched.
func (g *TableGroup) Ungroup(tables []*ordertable.OrderTable, at time.Time) error {
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return err
		}
		if gid := t.TableGroupID(); gid == nil || *gid != g.id {
			return errs.NewInvalidArgumentError(fmt.Sprintf(
				"order table %s is not a member of table group %s", t.ID(), g.id))
		}
	}
	if len(tables) == 0 {
		return nil
	}

	released := make([]kernel.ID, 0, len(tables))
	for _, t := range tables {
		t.LeaveGroup()
		released = append(released, t.ID())
	}
	g.orderTableIDs = slices.DeleteFunc(g.orderTableIDs, func(id kernel.ID) bool {
		return slices.Contains(released, id)
	})

	g.RaiseDomainEvent(newUngroupedEvent(g.id, released, at))
	return nil
}

func validateTables(tables []*ordertable.OrderTable) error {
	if len(tables) < MinOrderTables {
		return errs.NewInvalidArgumentError(fmt.Sprintf(
			"table group needs at least %d order tables, got %d", MinOrderTables, len(tables)))
	}

	seen := make(map[kernel.ID]struct{}, len(tables))
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := seen[t.ID()]; ok {
			return errs.NewInvalidArgumentError(fmt.Sprintf("order table %s is listed twice", t.ID()))
		}
		seen[t.ID()] = struct{}{}

		if err := t.ValidateGroupable(); err != nil {
			return err
		}
	}
	return nil
}

func (g *TableGroup) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *TableGroup) setCreatedDate(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("created date")
	}
	g.createdDate = t
	return nil
}

func (g *TableGroup) setOrderTableIDs(ids []kernel.ID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("order table id", err)
		}
	}
	g.orderTableIDs = slices.Clone(ids)
	return nil
}
