package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
)

// Handlers groups the use cases the REST surface exposes.
type Handlers struct {
	// Command handlers
	CreateProduct         commands.CreateProductCommandHandler
	CreateMenuGroup       commands.CreateMenuGroupCommandHandler
	CreateMenu            commands.CreateMenuCommandHandler
	CreateOrderTable      commands.CreateOrderTableCommandHandler
	ChangeOrderTableEmpty commands.ChangeOrderTableEmptyCommandHandler
	ChangeNumberOfGuests  commands.ChangeNumberOfGuestsCommandHandler
	CreateTableGroup      commands.CreateTableGroupCommandHandler
	UngroupTableGroup     commands.UngroupTableGroupCommandHandler
	CreateOrder           commands.CreateOrderCommandHandler
	ChangeOrderStatus     commands.ChangeOrderStatusCommandHandler
	AddOrderLineItems     commands.AddOrderLineItemsCommandHandler

	// Query handlers
	GetAllProducts    queries.GetAllProductsQueryHandler
	GetAllMenuGroups  queries.GetAllMenuGroupsQueryHandler
	GetAllMenus       queries.GetAllMenusQueryHandler
	GetAllOrderTables queries.GetAllOrderTablesQueryHandler
	GetTableGroup     queries.GetTableGroupQueryHandler
	GetAllOrders      queries.GetAllOrdersQueryHandler
}

// Server translates HTTP requests into commands and queries and maps their
// results and errors back to JSON.
type Server struct {
	handlers Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

func created(c echo.Context, location string, body any) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, body)
}

// bind decodes the request body. Decoding failures are reported as 400.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func resourcePath(collection string, id int64) string {
	return fmt.Sprintf("/api/%s/%d", collection, id)
}
