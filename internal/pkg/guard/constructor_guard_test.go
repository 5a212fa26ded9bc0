package guard_test

import (
	"errors"
	"testing"

	"kitchenpos/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("menu not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type seat struct {
		number int
		guard  guard.ConstructorGuard
	}
	errSeatNotConstructed := errors.New("seat must be created via newSeat")
	newSeat := func(n int) seat { return seat{number: n, guard: guard.NewConstructorGuard()} }

	require.NoError(t, newSeat(3).guard.Validate(errSeatNotConstructed))
	require.ErrorIs(t, seat{number: 3}.guard.Validate(errSeatNotConstructed), errSeatNotConstructed)
}
