package cmd

import (
	"gorm.io/gorm"

	httpadapter "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	bus        ports.MessageBus
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, bus ports.MessageBus) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        bus,
	}
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tableUoWFactory() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	return commands.NewCreateMenuGroupCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	return commands.NewCreateMenuCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderTableCommandHandler() commands.CreateOrderTableCommandHandler {
	return commands.NewCreateOrderTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderTableEmptyCommandHandler() commands.ChangeOrderTableEmptyCommandHandler {
	return commands.NewChangeOrderTableEmptyCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateChangeNumberOfGuestsCommandHandler() commands.ChangeNumberOfGuestsCommandHandler {
	return commands.NewChangeNumberOfGuestsCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateCreateTableGroupCommandHandler() commands.CreateTableGroupCommandHandler {
	return commands.NewCreateTableGroupCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateUngroupTableGroupCommandHandler() commands.UngroupTableGroupCommandHandler {
	return commands.NewUngroupTableGroupCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderLineItemsCommandHandler() commands.AddOrderLineItemsCommandHandler {
	return commands.NewAddOrderLineItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePublishOutboxMessagesCommandHandler() commands.PublishOutboxMessagesCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOutboxMessagesCommandHandler(f, c.bus)
}

// CreateHTTPHandlers wires every use case the REST server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		CreateMenuGroup:       c.CreateCreateMenuGroupCommandHandler(),
		CreateMenu:            c.CreateCreateMenuCommandHandler(),
		CreateOrderTable:      c.CreateCreateOrderTableCommandHandler(),
		ChangeOrderTableEmpty: c.CreateChangeOrderTableEmptyCommandHandler(),
		ChangeNumberOfGuests:  c.CreateChangeNumberOfGuestsCommandHandler(),
		CreateTableGroup:      c.CreateCreateTableGroupCommandHandler(),
		UngroupTableGroup:     c.CreateUngroupTableGroupCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:     c.CreateChangeOrderStatusCommandHandler(),
		AddOrderLineItems:     c.CreateAddOrderLineItemsCommandHandler(),

		GetAllProducts:    queries.NewGetAllProductsQueryHandler(c.gormDB),
		GetAllMenuGroups:  queries.NewGetAllMenuGroupsQueryHandler(c.gormDB),
		GetAllMenus:       queries.NewGetAllMenusQueryHandler(c.gormDB),
		GetAllOrderTables: queries.NewGetAllOrderTablesQueryHandler(c.gormDB),
		GetTableGroup:     queries.NewGetTableGroupQueryHandler(c.gormDB),
		GetAllOrders:      queries.NewGetAllOrdersQueryHandler(c.gormDB),
	}
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
