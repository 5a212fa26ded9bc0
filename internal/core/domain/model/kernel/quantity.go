package kernel

import (
	"math"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when a Quantity was not created through NewQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity constructor")

// Quantity is a non-negative count of products in a menu or of menus in an order.
type Quantity struct {
	value int64
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity. Negative values are rejected.
func NewQuantity(value int64) (Quantity, error) {
	if value < 0 {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", value, 0, int64(math.MaxInt64))
	}
	return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Quantity was created through NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the count.
func (q Quantity) Value() int64 {
	return q.value
}

// IsEqual compares quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}
