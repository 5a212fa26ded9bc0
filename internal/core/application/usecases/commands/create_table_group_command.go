package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateTableGroupCommandIsNotConstructed = errors.New(
	"CreateTableGroupCommand must be created via NewCreateTableGroupCommand constructor",
)

// CreateTableGroupCommand seats one party across several tables.
type CreateTableGroupCommand struct {
	orderTableIDs []kernel.ID

	guard guard.ConstructorGuard
}

func NewCreateTableGroupCommand(orderTableIDs []int64) (CreateTableGroupCommand, error) {
	ids := make([]kernel.ID, 0, len(orderTableIDs))
	for i, raw := range orderTableIDs {
		if err := kernel.ID(raw).Validate(); err != nil {
			return CreateTableGroupCommand{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("order table id at %d", i), err)
		}
		ids = append(ids, kernel.ID(raw))
	}

	return CreateTableGroupCommand{
		orderTableIDs: ids,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTableGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableGroupCommandIsNotConstructed)
}

func (c CreateTableGroupCommand) OrderTableIDs() []kernel.ID {
	return append([]kernel.ID(nil), c.orderTableIDs...)
}
