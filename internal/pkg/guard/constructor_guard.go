// Package guard provides the constructor guard embedded by value objects, entities
// and commands to tell constructed instances apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as created through its constructor. The zero value is
// "not constructed", so a struct literal that skips the constructor fails Validate.
//
// Example usage:
//
//	type Quantity struct {
//	    value int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuantity(v int64) (Quantity, error) {
//	    if v < 0 {
//	        return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", v, 0, math.MaxInt64)
//	    }
//	    return Quantity{value: v, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quantity) Validate() error {
//	    return q.guard.Validate(ErrQuantityIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guarded object was not built by its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
