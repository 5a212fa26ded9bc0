package queries

import (
	"context"

	"gorm.io/gorm"

	"kitchenpos/internal/core/domain/model/kernel"
)

// GetAllOrdersQueryHandler reads orders and their line items in two passes.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns orders by id with line items in the order they were added.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	byID := make(map[kernel.ID]int, len(orders))
	for i, o := range orders {
		byID[o.ID] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			seq,
			menu_id,
			menu_name,
			menu_price,
			quantity
		FROM order_line_items
		ORDER BY order_id, seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID kernel.ID
		var li OrderLineItemResponse
		err = rows.Scan(
			&orderID,
			&li.Seq,
			&li.MenuID,
			&li.MenuName,
			&li.MenuPrice,
			&li.Quantity,
		)
		if err != nil {
			return nil, err
		}
		if i, ok := byID[orderID]; ok {
			orders[i].LineItems = append(orders[i].LineItems, li)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetAllOrdersQueryHandler) readOrders(ctx context.Context) ([]GetAllOrdersQueryResponse, error) {
	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_table_id,
			status,
			ordered_time
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		o := GetAllOrdersQueryResponse{LineItems: make([]OrderLineItemResponse, 0)}
		if err = rows.Scan(&o.ID, &o.OrderTableID, &o.Status, &o.OrderedTime); err != nil {
			return nil, err
		}
		o.OrderedTime = o.OrderedTime.UTC()
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
