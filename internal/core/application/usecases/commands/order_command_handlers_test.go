package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

type orderMocks struct {
	uow     *MockUoW
	orders  *MockOrderRepository
	tables  *MockOrderTableRepository
	menus   *MockMenuRepository
	factory *MockOrderUoWFactory
}

func newOrderMocks(t *testing.T) orderMocks {
	m := orderMocks{
		uow:     new(MockUoW),
		orders:  new(MockOrderRepository),
		tables:  new(MockOrderTableRepository),
		menus:   new(MockMenuRepository),
		factory: new(MockOrderUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Maybe()
	m.uow.On("Begin", t.Context()).Return(nil).Maybe()
	m.uow.On("Rollback", t.Context()).Return(nil).Maybe()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("OrderTableRepository").Return(m.tables).Maybe()
	m.uow.On("MenuRepository").Return(m.menus).Maybe()
	return m
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	m := newOrderMocks(t)
	m.menus.On("CountByIDIn", ctx, []kernel.ID{1}).Return(int64(1), nil).Once()
	m.menus.On("FindAllByIDIn", ctx, []kernel.ID{1}).Return([]*menu.Menu{newMenu(t, 1, "19000")}, nil).Once()
	m.tables.On("Get", ctx, kernel.ID(3)).Return(newTable(t, 3, nil, 10, false), nil).Once()
	m.orders.On("NextID", ctx).Return(kernel.ID(50), nil).Once()
	m.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewCreateOrderCommand(3, []commands.OrderLineItemInput{{MenuID: 1, Quantity: 2}})
	require.NoError(t, err)
	o, err := commands.NewCreateOrderCommandHandler(m.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(50), o.ID())
	assert.Equal(t, order.Cooking, o.Status())
	assert.False(t, o.OrderedTime().IsZero())
	require.Len(t, o.LineItems(), 1)
	assert.Equal(t, "two chickens", o.LineItems()[0].MenuName().Value())
	assert.Len(t, o.DomainEvents(), 1)
	m.orders.AssertExpectations(t)
	m.uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Failures(t *testing.T) {
	t.Run("no line items", func(t *testing.T) {
		m := newOrderMocks(t)

		cmd, err := commands.NewCreateOrderCommand(3, nil)
		require.NoError(t, err)
		_, err = commands.NewCreateOrderCommandHandler(m.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		m.menus.AssertNotCalled(t, "CountByIDIn", mock.Anything, mock.Anything)
	})

	t.Run("unknown or duplicated menu", func(t *testing.T) {
		ctx := t.Context()
		m := newOrderMocks(t)
		m.menus.On("CountByIDIn", ctx, []kernel.ID{1, 1}).Return(int64(1), nil).Once()

		cmd, err := commands.NewCreateOrderCommand(3, []commands.OrderLineItemInput{
			{MenuID: 1, Quantity: 1},
			{MenuID: 1, Quantity: 1},
		})
		require.NoError(t, err)
		_, err = commands.NewCreateOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		m.tables.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("empty table", func(t *testing.T) {
		ctx := t.Context()
		m := newOrderMocks(t)
		m.menus.On("CountByIDIn", ctx, []kernel.ID{1}).Return(int64(1), nil).Once()
		m.menus.On("FindAllByIDIn", ctx, []kernel.ID{1}).Return([]*menu.Menu{newMenu(t, 1, "19000")}, nil).Once()
		m.tables.On("Get", ctx, kernel.ID(3)).Return(newTable(t, 3, nil, 0, true), nil).Once()
		m.orders.On("NextID", ctx).Return(kernel.ID(50), nil).Once()

		cmd, err := commands.NewCreateOrderCommand(3, []commands.OrderLineItemInput{{MenuID: 1, Quantity: 1}})
		require.NoError(t, err)
		_, err = commands.NewCreateOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		m.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("begin error", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
		)

		cmd, err := commands.NewCreateOrderCommand(3, []commands.OrderLineItemInput{{MenuID: 1, Quantity: 1}})
		require.NoError(t, err)
		_, err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

		require.EqualError(t, err, "begin error")
		uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("cooking to meal", func(t *testing.T) {
		ctx := t.Context()
		m := newOrderMocks(t)
		o := newOrder(t, 50, 3, order.Cooking)
		m.orders.On("Get", ctx, kernel.ID(50)).Return(o, nil).Once()
		m.orders.On("Update", ctx, o).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewChangeOrderStatusCommand(50, "MEAL")
		require.NoError(t, err)
		updated, err := commands.NewChangeOrderStatusCommandHandler(m.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Meal, updated.Status())
		m.orders.AssertExpectations(t)
	})

	t.Run("completed order is final", func(t *testing.T) {
		ctx := t.Context()
		m := newOrderMocks(t)
		o := newOrder(t, 50, 3, order.Completion)
		m.orders.On("Get", ctx, kernel.ID(50)).Return(o, nil).Once()

		cmd, err := commands.NewChangeOrderStatusCommand(50, "COOKING")
		require.NoError(t, err)
		_, err = commands.NewChangeOrderStatusCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAddOrderLineItemsCommandHandler_Handle(t *testing.T) {
	t.Run("cooking order grows", func(t *testing.T) {
		ctx := t.Context()
		m := newOrderMocks(t)
		o := newOrder(t, 50, 3, order.Cooking)
		m.orders.On("Get", ctx, kernel.ID(50)).Return(o, nil).Once()
		m.menus.On("CountByIDIn", ctx, []kernel.ID{2}).Return(int64(1), nil).Once()
		m.menus.On("FindAllByIDIn", ctx, []kernel.ID{2}).Return([]*menu.Menu{newMenu(t, 2, "2000")}, nil).Once()
		m.orders.On("Update", ctx, o).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewAddOrderLineItemsCommand(50, []commands.OrderLineItemInput{{MenuID: 2, Quantity: 3}})
		require.NoError(t, err)
		updated, err := commands.NewAddOrderLineItemsCommandHandler(m.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Len(t, updated.LineItems(), 2)
		m.orders.AssertExpectations(t)
	})

	t.Run("served order is rejected", func(t *testing.T) {
		ctx := t.Context()
		m := newOrderMocks(t)
		o := newOrder(t, 50, 3, order.Meal)
		m.orders.On("Get", ctx, kernel.ID(50)).Return(o, nil).Once()
		m.menus.On("CountByIDIn", ctx, []kernel.ID{2}).Return(int64(1), nil).Once()
		m.menus.On("FindAllByIDIn", ctx, []kernel.ID{2}).Return([]*menu.Menu{newMenu(t, 2, "2000")}, nil).Once()

		cmd, err := commands.NewAddOrderLineItemsCommand(50, []commands.OrderLineItemInput{{MenuID: 2, Quantity: 3}})
		require.NoError(t, err)
		_, err = commands.NewAddOrderLineItemsCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
