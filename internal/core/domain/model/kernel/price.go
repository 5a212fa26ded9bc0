package kernel

import (
	"fmt"
	"strings"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrPriceIsRequired is returned when a price literal is empty.
	ErrPriceIsRequired = errs.NewValueIsRequiredError("price")
	// ErrPriceIsNotConstructed is returned when a Price was not created through one of its constructors.
	ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice or ParsePrice constructors")
)

// Price is a non-negative money amount. All arithmetic is exact decimal arithmetic,
// and two prices are equal when their decimal values are equal regardless of scale
// ("10" equals "10.00").
type Price struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// ZeroPrice returns a price of zero, the identity for Add.
func ZeroPrice() Price {
	return Price{value: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewPrice creates a Price from a decimal value. Negative values are rejected.
func NewPrice(value decimal.Decimal) (Price, error) {
	if value.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", value.String()))
	}
	return Price{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParsePrice creates a Price from a decimal literal such as "16000" or "9.99".
// Empty, unparseable and negative literals are rejected.
func ParsePrice(literal string) (Price, error) {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return Price{}, ErrPriceIsRequired
	}

	value, err := decimal.NewFromString(literal)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return NewPrice(value)
}

// Validate ensures the Price was created through a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Decimal returns the underlying decimal value.
func (p Price) Decimal() decimal.Decimal {
	return p.value
}

// Add returns the sum of both prices.
func (p Price) Add(other Price) Price {
	return Price{value: p.value.Add(other.value), guard: guard.NewConstructorGuard()}
}

// Multiply returns the price times the quantity.
func (p Price) Multiply(quantity Quantity) Price {
	return Price{
		value: p.value.Mul(decimal.NewFromInt(quantity.Value())),
		guard: guard.NewConstructorGuard(),
	}
}

// IsGreaterThan reports whether p is strictly greater than other.
func (p Price) IsGreaterThan(other Price) bool {
	return p.value.GreaterThan(other.value)
}

// IsEqual compares prices by decimal value.
func (p Price) IsEqual(other Price) bool {
	return p.value.Equal(other.value)
}

func (p Price) String() string {
	return p.value.String()
}

// SumPrices adds up prices, returning zero for an empty slice.
func SumPrices(prices ...Price) Price {
	total := ZeroPrice()
	for _, p := range prices {
		total = total.Add(p)
	}
	return total
}
