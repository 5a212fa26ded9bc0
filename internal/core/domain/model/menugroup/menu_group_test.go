package menugroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
)

func TestNewMenuGroup(t *testing.T) {
	name, err := kernel.NewName("two-chicken set")
	require.NoError(t, err)

	g, err := menugroup.NewMenuGroup(7, name)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, kernel.ID(7), g.ID())
	assert.Equal(t, "two-chicken set", g.Name().Value())

	_, err = menugroup.NewMenuGroup(7, kernel.Name{})
	assert.ErrorIs(t, err, kernel.ErrNameIsNotConstructed)

	var zero *menugroup.MenuGroup
	assert.Equal(t, menugroup.ErrMenuGroupIsNotConstructed, zero.Validate())
}
