package kernel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    string
		wantErr bool
	}{
		{name: "integer", literal: "16000", want: "16000"},
		{name: "fraction", literal: "9.99", want: "9.99"},
		{name: "zero", literal: "0", want: "0"},
		{name: "surrounding whitespace", literal: " 12 ", want: "12"},
		{name: "empty", literal: "", wantErr: true},
		{name: "blank", literal: "   ", wantErr: true},
		{name: "not a number", literal: "twelve", wantErr: true},
		{name: "negative", literal: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := kernel.ParsePrice(tt.literal)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidArgument)
				assert.Zero(t, price)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, price.Validate())
			assert.Equal(t, tt.want, price.String())
		})
	}
}

func TestNewPrice_RejectsNegative(t *testing.T) {
	_, err := kernel.NewPrice(decimal.NewFromInt(-5))

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "price", invalid.ParamName)
}

func TestPrice_Validate(t *testing.T) {
	var price kernel.Price
	assert.Equal(t, kernel.ErrPriceIsNotConstructed, price.Validate())
	assert.NoError(t, kernel.ZeroPrice().Validate())
}

func TestPrice_IsEqualIgnoresScale(t *testing.T) {
	a := mustParsePrice(t, "10")
	b := mustParsePrice(t, "10.00")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsGreaterThan(b))
	assert.False(t, b.IsGreaterThan(a))
}

func TestPrice_Arithmetic(t *testing.T) {
	unit := mustParsePrice(t, "16000")
	two := mustNewQuantity(t, 2)

	total := unit.Multiply(two)
	assert.True(t, total.IsEqual(mustParsePrice(t, "32000")))

	sum := kernel.SumPrices(total, mustParsePrice(t, "0.5"))
	assert.Equal(t, "32000.5", sum.String())

	assert.True(t, kernel.SumPrices().IsEqual(kernel.ZeroPrice()))
	assert.True(t, sum.IsGreaterThan(total))
}

func mustParsePrice(t *testing.T, literal string) kernel.Price {
	t.Helper()
	price, err := kernel.ParsePrice(literal)
	require.NoError(t, err)
	return price
}

func mustNewQuantity(t *testing.T, value int64) kernel.Quantity {
	t.Helper()
	quantity, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return quantity
}
