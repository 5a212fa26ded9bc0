package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	postgres_adapter "kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/postgres/outboxrepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work and its repositories
// against a real PostgreSQL server.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.OpenPostgres(dsn, &gorm.Config{Logger: logger.Discard})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest empties every table and resets the id sequences.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		order_line_items, orders, order_tables, table_groups,
		menu_products, menus, menu_groups, products, outbox CASCADE`).Error
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Exec("UPDATE id_sequences SET last_value = 0").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMenuWithProducts_RoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	chicken := suite.addProduct(uow, "fried chicken", "16000.50")
	group := suite.addMenuGroup(uow, "chicken sets")

	id, err := uow.MenuRepository().NextID(ctx)
	suite.Require().NoError(err)
	m, err := menu.NewMenu(id, mustName(suite.T(), "two chickens"), mustPrice(suite.T(), "19000"), group.ID())
	suite.Require().NoError(err)
	mp, err := menu.NewMenuProduct(chicken, mustQuantity(suite.T(), 2))
	suite.Require().NoError(err)
	suite.Require().NoError(m.AddMenuProducts([]menu.MenuProduct{mp}))
	suite.Require().NoError(uow.MenuRepository().Add(ctx, m))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().MenuRepository().Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("two chickens", loaded.Name().Value())
	suite.True(decimal.RequireFromString("19000").Equal(loaded.Price().Decimal()))
	suite.Require().Len(loaded.MenuProducts(), 1)
	suite.True(decimal.RequireFromString("32001").Equal(loaded.ProductsTotalPrice().Decimal()))

	count, err := suite.factory.Create().MenuRepository().CountByIDIn(ctx, []kernel.ID{id, id + 100})
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderLifecycle_WritesOutbox() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	m := suite.addMenu(uow)
	table := addTable(suite.T(), uow, false)

	orderID, err := uow.OrderRepository().NextID(ctx)
	suite.Require().NoError(err)
	li, err := order.NewOrderLineItem(m, mustQuantity(suite.T(), 1))
	suite.Require().NoError(err)
	o, err := order.NewOrder(orderID, table, []order.OrderLineItem{li}, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	busy, err := suite.factory.Create().OrderRepository().
		ExistsByOrderTableIDAndStatusIn(ctx, table.ID(), order.InProgressStatuses())
	suite.Require().NoError(err)
	suite.True(busy)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeOrderStatus(order.Completion, now.Add(time.Hour)))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	busy, err = suite.factory.Create().OrderRepository().
		ExistsByOrderTableIDAndStatusIn(ctx, table.ID(), order.InProgressStatuses())
	suite.Require().NoError(err)
	suite.False(busy)

	var rows []outboxrepo.MessageDTO
	suite.Require().NoError(suite.db.Order("occurred_at").Find(&rows).Error)
	suite.Require().Len(rows, 2)
	suite.Equal(order.PlacedEventName, rows[0].EventName)
	suite.Equal(order.StatusChangedEventName, rows[1].EventName)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGet_Missing_ReturnsObjectNotFound() {
	_, err := suite.factory.Create().OrderRepository().Get(context.Background(), 404)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNextID_ConcurrentTransactionsNeverCollide() {
	ctx := context.Background()
	const workers = 8

	ids := make(chan kernel.ID, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			repo := uow.OrderTableRepository()
			id, err := repo.NextID(ctx)
			if err != nil {
				return
			}
			table, err := ordertable.NewOrderTable(id, 0, true)
			if err != nil {
				return
			}
			if err = repo.Add(ctx, table); err != nil {
				return
			}
			if err = uow.Commit(ctx); err == nil {
				ids <- table.ID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[kernel.ID]struct{}, workers)
	for id := range ids {
		_, dup := seen[id]
		suite.False(dup, "id %s handed out twice", id)
		seen[id] = struct{}{}
	}
	suite.Len(seen, workers)
}

// lockedRead is what a second transaction saw once its read was let through.
type lockedRead[T any] struct {
	uow       ports.UnitOfWork
	aggregate T
	err       error
}

// notDoneWithin reports whether nothing arrived on ch within d. A value that
// did arrive is put back, so ch needs a buffer of one.
func notDoneWithin[T any](ch chan T, d time.Duration) bool {
	select {
	case v := <-ch:
		ch <- v
		return false
	case <-time.After(d):
		return true
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestChangeOrderStatus_ConcurrentWriterSeesCommittedStatus() {
	ctx := context.Background()
	orderID := suite.placeOrder(order.Meal)

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	defer func() { _ = first.Rollback(ctx) }()
	o, err := first.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)

	reads := make(chan lockedRead[*order.Order], 1)
	go func() {
		second := suite.factory.Create()
		if err := second.Begin(ctx); err != nil {
			reads <- lockedRead[*order.Order]{err: err}
			return
		}
		loaded, err := second.OrderRepository().Get(ctx, orderID)
		reads <- lockedRead[*order.Order]{uow: second, aggregate: loaded, err: err}
	}()

	suite.True(notDoneWithin(reads, 300*time.Millisecond), "second read must wait for the row lock")

	suite.Require().NoError(o.ChangeOrderStatus(order.Completion, now.Add(time.Hour)))
	suite.Require().NoError(first.OrderRepository().Update(ctx, o))
	suite.Require().NoError(first.Commit(ctx))

	read := <-reads
	suite.Require().NoError(read.err)
	defer func() { _ = read.uow.Rollback(ctx) }()
	suite.Equal(order.Completion, read.aggregate.Status())
	suite.Require().ErrorIs(read.aggregate.ChangeOrderStatus(order.Cooking, now.Add(2*time.Hour)), errs.ErrInvalidArgument)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEmptyTable_WaitsForConcurrentOrder() {
	ctx := context.Background()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	m := suite.addMenu(setup)
	table := addTable(suite.T(), setup, false)
	suite.Require().NoError(setup.Commit(ctx))

	placing := suite.factory.Create()
	suite.Require().NoError(placing.Begin(ctx))
	defer func() { _ = placing.Rollback(ctx) }()
	occupied, err := placing.OrderTableRepository().Get(ctx, table.ID())
	suite.Require().NoError(err)

	reads := make(chan lockedRead[bool], 1)
	go func() {
		emptying := suite.factory.Create()
		if err := emptying.Begin(ctx); err != nil {
			reads <- lockedRead[bool]{err: err}
			return
		}
		if _, err := emptying.OrderTableRepository().Get(ctx, table.ID()); err != nil {
			reads <- lockedRead[bool]{uow: emptying, err: err}
			return
		}
		busy, err := emptying.OrderRepository().
			ExistsByOrderTableIDAndStatusIn(ctx, table.ID(), order.InProgressStatuses())
		reads <- lockedRead[bool]{uow: emptying, aggregate: busy, err: err}
	}()

	suite.True(notDoneWithin(reads, 300*time.Millisecond), "emptying must wait for the table lock")

	orderID, err := placing.OrderRepository().NextID(ctx)
	suite.Require().NoError(err)
	li, err := order.NewOrderLineItem(m, mustQuantity(suite.T(), 1))
	suite.Require().NoError(err)
	o, err := order.NewOrder(orderID, occupied, []order.OrderLineItem{li}, now)
	suite.Require().NoError(err)
	suite.Require().NoError(placing.OrderRepository().Add(ctx, o))
	suite.Require().NoError(placing.Commit(ctx))

	read := <-reads
	suite.Require().NoError(read.err)
	defer func() { _ = read.uow.Rollback(ctx) }()
	suite.True(read.aggregate, "the order committed first must block emptying the table")
}

func (suite *UnitOfWorkIntegrationTestSuite) placeOrder(status order.Status) kernel.ID {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	m := suite.addMenu(uow)
	table := addTable(suite.T(), uow, false)
	id, err := uow.OrderRepository().NextID(ctx)
	suite.Require().NoError(err)
	li, err := order.NewOrderLineItem(m, mustQuantity(suite.T(), 1))
	suite.Require().NoError(err)
	o, err := order.NewOrder(id, table, []order.OrderLineItem{li}, now)
	suite.Require().NoError(err)
	if status != order.Cooking {
		suite.Require().NoError(o.ChangeOrderStatus(status, now))
	}
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	return id
}

func (suite *UnitOfWorkIntegrationTestSuite) addProduct(uow ports.UnitOfWork, name, price string) *product.Product {
	ctx := context.Background()
	id, err := uow.ProductRepository().NextID(ctx)
	suite.Require().NoError(err)
	p, err := product.NewProduct(id, mustName(suite.T(), name), mustPrice(suite.T(), price))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) addMenuGroup(uow ports.UnitOfWork, name string) *menugroup.MenuGroup {
	ctx := context.Background()
	id, err := uow.MenuGroupRepository().NextID(ctx)
	suite.Require().NoError(err)
	g, err := menugroup.NewMenuGroup(id, mustName(suite.T(), name))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MenuGroupRepository().Add(ctx, g))
	return g
}

func (suite *UnitOfWorkIntegrationTestSuite) addMenu(uow ports.UnitOfWork) *menu.Menu {
	ctx := context.Background()
	group := suite.addMenuGroup(uow, "sets")
	id, err := uow.MenuRepository().NextID(ctx)
	suite.Require().NoError(err)
	m, err := menu.NewMenu(id, mustName(suite.T(), "set"), mustPrice(suite.T(), "10000"), group.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MenuRepository().Add(ctx, m))
	return m
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs Docker")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
