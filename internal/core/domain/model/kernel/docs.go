// Package kernel provides the shared domain primitives of the point-of-sale backend.
//
// The package includes:
//   - ID: the numeric surrogate key of every aggregate
//   - Name: a non-blank display name
//   - Price: a non-negative money amount backed by exact decimal arithmetic
//   - Quantity: a non-negative count
//
// Every value object is immutable and must be built through its constructor. The
// zero value fails Validate, so a struct literal can never slip an unchecked value
// into an aggregate. Construction failures match errs.ErrInvalidArgument.
package kernel
