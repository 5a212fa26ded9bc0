package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every documented route on the router.
func RegisterHandlers(router EchoRouter, server *Server) {
	router.GET("/api/products", server.GetProducts)
	router.POST("/api/products", server.CreateProduct)
	router.GET("/api/menu-groups", server.GetMenuGroups)
	router.POST("/api/menu-groups", server.CreateMenuGroup)
	router.GET("/api/menus", server.GetMenus)
	router.POST("/api/menus", server.CreateMenu)

	router.GET("/api/tables", server.GetOrderTables)
	router.POST("/api/tables", server.CreateOrderTable)
	router.PUT("/api/tables/:id/empty", withID(server.ChangeOrderTableEmpty))
	router.PUT("/api/tables/:id/number-of-guests", withID(server.ChangeNumberOfGuests))
	router.POST("/api/table-groups", server.CreateTableGroup)
	router.GET("/api/table-groups/:id", withID(server.GetTableGroup))
	router.DELETE("/api/table-groups/:id", withID(server.UngroupTableGroup))

	router.GET("/api/orders", server.GetOrders)
	router.POST("/api/orders", server.CreateOrder)
	router.PUT("/api/orders/:id/order-status", withID(server.ChangeOrderStatus))
	router.POST("/api/orders/:id/order-line-items", withID(server.AddOrderLineItems))
}

// withID binds the {id} path parameter before calling next.
func withID(next func(c echo.Context, id int64) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		var id int64

		err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter id: "+err.Error())
		}

		return next(c, id)
	}
}
