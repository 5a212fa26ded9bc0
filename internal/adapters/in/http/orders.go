package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/order"
)

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req NewOrder
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderTableID, lineItemInputs(req.OrderLineItems))
	if err != nil {
		return err
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return created(c, resourcePath("orders", o.ID().Int64()), orderResponse(o))
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(c echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		items := make([]OrderLineItem, len(o.LineItems))
		for j, li := range o.LineItems {
			items[j] = OrderLineItem{
				MenuID:    li.MenuID.Int64(),
				MenuName:  li.MenuName,
				MenuPrice: li.MenuPrice,
				Quantity:  li.Quantity,
			}
		}
		response[i] = Order{
			ID:             o.ID.Int64(),
			OrderTableID:   o.OrderTableID.Int64(),
			OrderStatus:    o.Status,
			OrderedTime:    o.OrderedTime,
			OrderLineItems: items,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PUT /api/orders/{id}/order-status.
func (s *Server) ChangeOrderStatus(c echo.Context, id int64) error {
	var req ChangeOrderStatus
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.OrderStatus)
	if err != nil {
		return err
	}

	o, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse(o))
}

// AddOrderLineItems handles POST /api/orders/{id}/order-line-items.
func (s *Server) AddOrderLineItems(c echo.Context, id int64) error {
	var req AddOrderLineItems
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderLineItemsCommand(id, lineItemInputs(req.OrderLineItems))
	if err != nil {
		return err
	}

	o, err := s.handlers.AddOrderLineItems.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse(o))
}

func lineItemInputs(items []NewOrderLineItem) []commands.OrderLineItemInput {
	inputs := make([]commands.OrderLineItemInput, len(items))
	for i, li := range items {
		inputs[i] = commands.OrderLineItemInput{MenuID: li.MenuID, Quantity: li.Quantity}
	}
	return inputs
}

func orderResponse(o *order.Order) Order {
	items := make([]OrderLineItem, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		items = append(items, OrderLineItem{
			MenuID:    li.MenuID().Int64(),
			MenuName:  li.MenuName().Value(),
			MenuPrice: li.MenuPrice().Decimal(),
			Quantity:  li.Quantity().Value(),
		})
	}

	return Order{
		ID:             o.ID().Int64(),
		OrderTableID:   o.OrderTableID().Int64(),
		OrderStatus:    o.Status().String(),
		OrderedTime:    o.OrderedTime(),
		OrderLineItems: items,
	}
}
