package commands_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/tablegroup"
	"kitchenpos/internal/core/ports"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllByIDIn(ctx context.Context, ids []kernel.ID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockMenuGroupRepository struct{ mock.Mock }

func (m *MockMenuGroupRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockMenuGroupRepository) Add(ctx context.Context, g *menugroup.MenuGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockMenuGroupRepository) Get(ctx context.Context, id kernel.ID) (*menugroup.MenuGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menugroup.MenuGroup), args.Error(1)
}

func (m *MockMenuGroupRepository) FindAll(ctx context.Context) ([]*menugroup.MenuGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menugroup.MenuGroup), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockMenuRepository) Add(ctx context.Context, mn *menu.Menu) error {
	args := m.Called(ctx, mn)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.ID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindAll(ctx context.Context) ([]*menu.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindAllByIDIn(ctx context.Context, ids []kernel.ID) ([]*menu.Menu, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) CountByIDIn(ctx context.Context, ids []kernel.ID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderTableRepository struct{ mock.Mock }

func (m *MockOrderTableRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOrderTableRepository) Add(ctx context.Context, t *ordertable.OrderTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Update(ctx context.Context, t *ordertable.OrderTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Get(ctx context.Context, id kernel.ID) (*ordertable.OrderTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordertable.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) FindAll(ctx context.Context) ([]*ordertable.OrderTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ordertable.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) FindAllByIDIn(ctx context.Context, ids []kernel.ID) ([]*ordertable.OrderTable, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ordertable.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) FindAllByTableGroupID(
	ctx context.Context,
	id kernel.ID,
) ([]*ordertable.OrderTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ordertable.OrderTable), args.Error(1)
}

type MockTableGroupRepository struct{ mock.Mock }

func (m *MockTableGroupRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockTableGroupRepository) Add(ctx context.Context, g *tablegroup.TableGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockTableGroupRepository) Get(ctx context.Context, id kernel.ID) (*tablegroup.TableGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tablegroup.TableGroup), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByOrderTableIDAndStatusIn(
	ctx context.Context,
	id kernel.ID,
	statuses []order.Status,
) (bool, error) {
	args := m.Called(ctx, id, statuses)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) FindByTableGroupID(ctx context.Context, id kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockMessageBus struct{ mock.Mock }

func (m *MockMessageBus) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) MenuGroupRepository() ports.MenuGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuGroupRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}

func (m *MockUoW) TableGroupRepository() ports.TableGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.TableGroupRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockTableUoWFactory struct{ mock.Mock }

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	args := m.Called()
	return args.Get(0).(commands.TableUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}
