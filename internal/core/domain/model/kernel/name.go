package kernel

import (
	"strings"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a name is empty or only whitespace.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNameIsNotConstructed is returned when a Name was not created through NewName.
	ErrNameIsNotConstructed = errs.NewValueIsRequiredError("name must be created via NewName constructor")
)

// Name is a non-blank display name for products, menus and menu groups.
type Name struct {
	value string
	guard guard.ConstructorGuard
}

// NewName creates a Name. Blank input is rejected.
func NewName(value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return Name{}, ErrNameIsRequired
	}
	return Name{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Name was created through NewName.
func (n Name) Validate() error {
	return n.guard.Validate(ErrNameIsNotConstructed)
}

// Value returns the underlying string.
func (n Name) Value() string {
	return n.value
}

// IsEqual compares names by value.
func (n Name) IsEqual(other Name) bool {
	return n.value == other.value
}

func (n Name) String() string {
	return n.value
}
