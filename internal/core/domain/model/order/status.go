package order

import (
	"fmt"
	"strings"

	"kitchenpos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	COOKING <──> MEAL
//	   │          │
//	   └────┬─────┘
//	        v
//	    COMPLETION (terminal)
//
// Any non-terminal status may move to any valid status, including itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Cooking is the initial status of every order.
	Cooking

	// Meal means the food has been served.
	Meal

	// Completion is the terminal status.
	Completion
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Cooking:    "COOKING",
		Meal:       "MEAL",
		Completion: "COMPLETION",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Cooking:    "COOKING",
		Meal:       "MEAL",
		Completion: "COMPLETION",
	}
}

// InProgressStatuses are the statuses that keep a table occupied.
func InProgressStatuses() []Status {
	return []Status{Cooking, Meal}
}

// ParseStatus converts a status name such as "MEAL" into a Status. Matching is
// case-insensitive.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Completion
}

// IsInProgress reports whether an order in this status keeps its table occupied.
func (s Status) IsInProgress() bool {
	return s == Cooking || s == Meal
}

// ChangeTo transitions to the target status.
//
// Returns:
//   - (target, nil) when the current status is not terminal and the target is valid
//   - (0, error) otherwise; the error matches errs.ErrInvalidArgument
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidArgumentError(fmt.Sprintf("order in %s status cannot change status", s))
	}
	return target, nil
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
