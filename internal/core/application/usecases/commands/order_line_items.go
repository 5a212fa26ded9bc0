package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// OrderLineItemInput is one requested line: which menu and how many.
type OrderLineItemInput struct {
	MenuID   int64
	Quantity int64
}

type orderLine struct {
	menuID   kernel.ID
	quantity kernel.Quantity
}

func parseOrderLines(inputs []OrderLineItemInput) ([]orderLine, error) {
	lines := make([]orderLine, 0, len(inputs))
	for i, in := range inputs {
		if err := kernel.ID(in.MenuID).Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("order line item %d menu id", i), err)
		}
		q, err := kernel.NewQuantity(in.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, orderLine{menuID: kernel.ID(in.MenuID), quantity: q})
	}
	return lines, nil
}

// buildLineItems checks that every referenced menu exists and snapshots the menus
// into line items. The menu count is compared with the number of lines, so the
// same menu listed twice is rejected.
func buildLineItems(ctx context.Context, menuRepo ports.MenuRepository, lines []orderLine) ([]order.OrderLineItem, error) {
	if len(lines) == 0 {
		return nil, order.ErrOrderLineItemsAreRequired
	}

	ids := make([]kernel.ID, len(lines))
	for i, line := range lines {
		ids[i] = line.menuID
	}

	count, err := menuRepo.CountByIDIn(ctx, ids)
	if err != nil {
		return nil, err
	}
	if count != int64(len(ids)) {
		return nil, errs.NewInvalidArgumentError(fmt.Sprintf(
			"%d order line items reference %d distinct existing menus", len(ids), count))
	}

	menus, err := menuRepo.FindAllByIDIn(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[kernel.ID]int, len(menus))
	for i, m := range menus {
		byID[m.ID()] = i
	}

	items := make([]order.OrderLineItem, 0, len(lines))
	for _, line := range lines {
		idx, ok := byID[line.menuID]
		if !ok {
			return nil, errs.NewInvalidArgumentError(fmt.Sprintf("menu %s does not exist", line.menuID))
		}
		item, err := order.NewOrderLineItem(menus[idx], line.quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
