package kernel

import (
	"strconv"

	"kitchenpos/internal/pkg/errs"
)

// ErrIDIsRequired is returned when an ID is zero or negative.
var ErrIDIsRequired = errs.NewValueIsRequiredError("id")

// ID is the numeric surrogate key assigned to an aggregate when it is created.
// Valid identifiers are strictly positive.
type ID int64

// Validate reports whether the identifier was assigned.
func (id ID) Validate() error {
	if id <= 0 {
		return ErrIDIsRequired
	}
	return nil
}

// Int64 returns the raw value for persistence.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IDsToInt64 converts identifiers to raw values, preserving order.
func IDsToInt64(ids []ID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
