package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	// ErrInvalidArgument is the single kind of domain rule violation surfaced by the core.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrObjectNotFound is returned by repositories when a lookup misses.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid is returned when a value fails validation.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange is returned when a value lies outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired is returned when a required value is missing or blank.
	ErrValueIsRequired = errors.New("value is required")
)

// InvalidArgumentError reports a violated business rule together with a human-readable reason.
type InvalidArgumentError struct {
	Reason string
	Cause  error
}

// NewInvalidArgumentError creates an InvalidArgumentError with the given reason.
func NewInvalidArgumentError(reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: reason}
}

// NewInvalidArgumentErrorWithCause creates an InvalidArgumentError wrapping the cause.
func NewInvalidArgumentErrorWithCause(reason string, cause error) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: reason, Cause: cause}
}

func (e *InvalidArgumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrInvalidArgument, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Is lets errors.Is see through to the cause.
func (e *InvalidArgumentError) Is(target error) bool {
	return e.Cause != nil && errors.Is(e.Cause, target)
}

// ObjectNotFoundError reports a missing aggregate. ParamName names the kind of object looked up.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize("%s", e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize("%s", e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports an invalid value. It also matches ErrInvalidArgument.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

func (e *ValueIsInvalidError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ValueIsOutOfRangeError reports a value outside [Min, Max]. It also matches ErrInvalidArgument.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping the cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize("%v", e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ValueIsRequiredError reports a missing value. It also matches ErrInvalidArgument.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

func (e *ValueIsRequiredError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// sanitize renders a value on a single line so it is safe to embed in log output.
func sanitize(format string, v any) string {
	s := fmt.Sprintf(format, v)
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
