package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/tablegroup"
)

// CreateOrderTable handles POST /api/tables.
func (s *Server) CreateOrderTable(c echo.Context) error {
	var req NewOrderTable
	if err := bind(c, &req); err != nil {
		return err
	}

	t, err := s.handlers.CreateOrderTable.Handle(
		c.Request().Context(),
		commands.NewCreateOrderTableCommand(req.NumberOfGuests, req.Empty),
	)
	if err != nil {
		return err
	}

	return created(c, resourcePath("tables", t.ID().Int64()), orderTableResponse(t))
}

// GetOrderTables handles GET /api/tables.
func (s *Server) GetOrderTables(c echo.Context) error {
	tables, err := s.handlers.GetAllOrderTables.Handle(c.Request().Context(), queries.NewGetAllOrderTablesQuery())
	if err != nil {
		return err
	}

	response := make([]OrderTable, len(tables))
	for i, t := range tables {
		response[i] = OrderTable{
			ID:             t.ID.Int64(),
			TableGroupID:   rawID(t.TableGroupID),
			NumberOfGuests: t.NumberOfGuests,
			Empty:          t.Empty,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ChangeOrderTableEmpty handles PUT /api/tables/{id}/empty.
func (s *Server) ChangeOrderTableEmpty(c echo.Context, id int64) error {
	var req ChangeEmpty
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderTableEmptyCommand(id, req.Empty)
	if err != nil {
		return err
	}

	t, err := s.handlers.ChangeOrderTableEmpty.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderTableResponse(t))
}

// ChangeNumberOfGuests handles PUT /api/tables/{id}/number-of-guests.
func (s *Server) ChangeNumberOfGuests(c echo.Context, id int64) error {
	var req ChangeNumberOfGuests
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeNumberOfGuestsCommand(id, req.NumberOfGuests)
	if err != nil {
		return err
	}

	t, err := s.handlers.ChangeNumberOfGuests.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderTableResponse(t))
}

// CreateTableGroup handles POST /api/table-groups.
func (s *Server) CreateTableGroup(c echo.Context) error {
	var req NewTableGroup
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateTableGroupCommand(req.OrderTableIDs)
	if err != nil {
		return err
	}

	g, err := s.handlers.CreateTableGroup.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return created(c, resourcePath("table-groups", g.ID().Int64()), tableGroupResponse(g))
}

// GetTableGroup handles GET /api/table-groups/{id}.
func (s *Server) GetTableGroup(c echo.Context, id int64) error {
	query, err := queries.NewGetTableGroupQuery(id)
	if err != nil {
		return err
	}

	g, err := s.handlers.GetTableGroup.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TableGroup{
		ID:            g.ID.Int64(),
		CreatedDate:   g.CreatedDate,
		OrderTableIDs: kernel.IDsToInt64(g.OrderTableIDs),
	})
}

// UngroupTableGroup handles DELETE /api/table-groups/{id}.
func (s *Server) UngroupTableGroup(c echo.Context, id int64) error {
	cmd, err := commands.NewUngroupTableGroupCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.UngroupTableGroup.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func orderTableResponse(t *ordertable.OrderTable) OrderTable {
	return OrderTable{
		ID:             t.ID().Int64(),
		TableGroupID:   rawID(t.TableGroupID()),
		NumberOfGuests: t.NumberOfGuests(),
		Empty:          t.IsEmpty(),
	}
}

func tableGroupResponse(g *tablegroup.TableGroup) TableGroup {
	return TableGroup{
		ID:            g.ID().Int64(),
		CreatedDate:   g.CreatedDate(),
		OrderTableIDs: kernel.IDsToInt64(g.OrderTableIDs()),
	}
}

func rawID(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}
