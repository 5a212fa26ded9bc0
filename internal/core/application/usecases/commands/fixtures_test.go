package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/product"
)

var placedAt = time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)

func mustName(t *testing.T, v string) kernel.Name {
	t.Helper()
	n, err := kernel.NewName(v)
	require.NoError(t, err)
	return n
}

func mustPrice(t *testing.T, v string) kernel.Price {
	t.Helper()
	p, err := kernel.ParsePrice(v)
	require.NoError(t, err)
	return p
}

func mustQuantity(t *testing.T, v int64) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func newProduct(t *testing.T, id kernel.ID, price string) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, mustName(t, "chicken"), mustPrice(t, price))
	require.NoError(t, err)
	return p
}

func newMenuGroup(t *testing.T, id kernel.ID) *menugroup.MenuGroup {
	t.Helper()
	g, err := menugroup.RestoreMenuGroup(id, mustName(t, "chicken sets"))
	require.NoError(t, err)
	return g
}

func newMenu(t *testing.T, id kernel.ID, price string) *menu.Menu {
	t.Helper()
	m, err := menu.RestoreMenu(id, mustName(t, "two chickens"), mustPrice(t, price), 1, nil)
	require.NoError(t, err)
	return m
}

func newTable(t *testing.T, id kernel.ID, groupID *kernel.ID, guests int, empty bool) *ordertable.OrderTable {
	t.Helper()
	table, err := ordertable.RestoreOrderTable(id, groupID, guests, empty)
	require.NoError(t, err)
	return table
}

func newOrder(t *testing.T, id, tableID kernel.ID, status order.Status) *order.Order {
	t.Helper()
	li, err := order.NewOrderLineItem(newMenu(t, 1, "19000"), mustQuantity(t, 1))
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, tableID, status, placedAt, []order.OrderLineItem{li})
	require.NoError(t, err)
	return o
}

func idPtr(id kernel.ID) *kernel.ID {
	return &id
}
