package menurepo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	postgres_adapter "kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/productrepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) Track(aggregate any) {
	m.Called(aggregate)
}

type fixture struct {
	db       *gorm.DB
	tracker  *MockAggregateTracker
	menus    *menurepo.GormMenuRepository
	products *productrepo.GormProductRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := postgres_adapter.OpenSQLite("file:"+t.Name()+"?mode=memory&cache=shared", &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(t.Context(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	tracker := new(MockAggregateTracker)
	tracker.On("Track", mock.Anything)
	return fixture{
		db:       db,
		tracker:  tracker,
		menus:    menurepo.NewGormMenuRepository(db, tracker),
		products: productrepo.NewGormProductRepository(db, tracker),
	}
}

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

func (f fixture) addProduct(t *testing.T, price string) *product.Product {
	t.Helper()
	id, err := f.products.NextID(t.Context())
	require.NoError(t, err)
	p, err := product.NewProduct(id, mustName(t, "chicken"), mustPrice(t, price))
	require.NoError(t, err)
	require.NoError(t, f.products.Add(t.Context(), p))
	return p
}

func (f fixture) newMenu(t *testing.T, price string, products ...*product.Product) *menu.Menu {
	t.Helper()
	id, err := f.menus.NextID(t.Context())
	require.NoError(t, err)
	m, err := menu.NewMenu(id, mustName(t, "two chickens"), mustPrice(t, price), 1)
	require.NoError(t, err)

	items := make([]menu.MenuProduct, 0, len(products))
	for _, p := range products {
		q, err := kernel.NewQuantity(2)
		require.NoError(t, err)
		mp, err := menu.NewMenuProduct(p, q)
		require.NoError(t, err)
		items = append(items, mp)
	}
	if len(items) > 0 {
		require.NoError(t, m.AddMenuProducts(items))
	}
	return m
}

func TestGormMenuRepository_AddAndGet_RestoresProductPrices(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	fried, spicy := f.addProduct(t, "16000"), f.addProduct(t, "17000")

	m := f.newMenu(t, "60000", fried, spicy)
	require.NoError(t, f.menus.Add(ctx, m))

	got, err := f.menus.Get(ctx, m.ID())
	require.NoError(t, err)
	require.Len(t, got.MenuProducts(), 2)
	assert.Equal(t, fried.ID(), got.MenuProducts()[0].ProductID())
	assert.Equal(t, spicy.ID(), got.MenuProducts()[1].ProductID())
	assert.True(t, mustPrice(t, "66000").IsEqual(got.ProductsTotalPrice()), "got %s", got.ProductsTotalPrice())
	assert.Equal(t, kernel.ID(1), got.MenuGroupID())

	var products int64
	require.NoError(t, f.db.Model(&productrepo.ProductDTO{}).Count(&products).Error)
	assert.Equal(t, int64(2), products, "adding a menu never writes products")
}

func TestGormMenuRepository_MenuWithoutProducts(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	m := f.newMenu(t, "1000")
	require.NoError(t, f.menus.Add(ctx, m))

	got, err := f.menus.Get(ctx, m.ID())
	require.NoError(t, err)
	assert.Empty(t, got.MenuProducts())
}

func TestGormMenuRepository_Get_Missing(t *testing.T) {
	_, err := newFixture(t).menus.Get(t.Context(), 7)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormMenuRepository_Lookups(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	p := f.addProduct(t, "16000")

	a := f.newMenu(t, "30000", p)
	require.NoError(t, f.menus.Add(ctx, a))
	b := f.newMenu(t, "20000", p)
	require.NoError(t, f.menus.Add(ctx, b))

	all, err := f.menus.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := f.menus.FindAllByIDIn(ctx, []kernel.ID{b.ID()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Len(t, found[0].MenuProducts(), 1)

	count, err := f.menus.CountByIDIn(ctx, []kernel.ID{a.ID(), b.ID(), 99})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = f.menus.CountByIDIn(ctx, []kernel.ID{a.ID(), a.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "duplicates count once")
}
