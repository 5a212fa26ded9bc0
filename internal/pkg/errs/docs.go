// Package errs provides standardized error types for the point-of-sale backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The domain core surfaces a single kind of failure, ErrInvalidArgument, always
// carrying a human-readable reason. The value object errors below are refinements
// of that kind and also match ErrInvalidArgument through errors.Is:
//   - InvalidArgumentError: a violated business rule
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value cannot be parsed or is otherwise invalid
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//
// ObjectNotFoundError belongs to the persistence layer and is returned by
// repositories when a lookup misses. It does not match ErrInvalidArgument.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
