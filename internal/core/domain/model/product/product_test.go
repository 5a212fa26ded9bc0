package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"
)

func TestNewProduct(t *testing.T) {
	name, err := kernel.NewName("fried chicken")
	require.NoError(t, err)
	price, err := kernel.ParsePrice("16000")
	require.NoError(t, err)

	t.Run("should create product", func(t *testing.T) {
		p, err := product.NewProduct(1, name, price)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, kernel.ID(1), p.ID())
		assert.Equal(t, "fried chicken", p.Name().Value())
		assert.True(t, p.Price().IsEqual(price))
	})

	t.Run("should fail without price", func(t *testing.T) {
		p, err := product.NewProduct(1, name, kernel.Price{})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("should fail without id", func(t *testing.T) {
		p, err := product.NewProduct(0, name, price)

		assert.ErrorIs(t, err, kernel.ErrIDIsRequired)
		assert.Nil(t, p)
	})

	t.Run("should join all construction errors", func(t *testing.T) {
		_, err := product.NewProduct(0, kernel.Name{}, kernel.Price{})

		assert.ErrorIs(t, err, kernel.ErrIDIsRequired)
		assert.ErrorIs(t, err, kernel.ErrNameIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})
}

func TestProduct_Validate(t *testing.T) {
	var p *product.Product
	assert.Equal(t, product.ErrProductIsNotConstructed, p.Validate())
	assert.Equal(t, product.ErrProductIsNotConstructed, (&product.Product{}).Validate())
}
