// Package menugroup holds the MenuGroup aggregate, a named category that menus belong to.
package menugroup

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

// ErrMenuGroupIsNotConstructed is returned when a MenuGroup was not created through a constructor.
var ErrMenuGroupIsNotConstructed = errors.New("menu group must be created via NewMenuGroup constructor")

// MenuGroup is a named category of menus.
type MenuGroup struct {
	id    kernel.ID
	name  kernel.Name
	guard guard.ConstructorGuard
}

// NewMenuGroup creates a MenuGroup.
func NewMenuGroup(id kernel.ID, name kernel.Name) (*MenuGroup, error) {
	g := &MenuGroup{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		g.setID(id),
		g.setName(name),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// RestoreMenuGroup reconstructs a MenuGroup loaded from storage.
func RestoreMenuGroup(id kernel.ID, name kernel.Name) (*MenuGroup, error) {
	return NewMenuGroup(id, name)
}

func (g *MenuGroup) Validate() error {
	if g == nil {
		return ErrMenuGroupIsNotConstructed
	}
	return g.guard.Validate(ErrMenuGroupIsNotConstructed)
}

func (g *MenuGroup) ID() kernel.ID {
	return g.id
}

func (g *MenuGroup) Name() kernel.Name {
	return g.name
}

func (g *MenuGroup) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *MenuGroup) setName(name kernel.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	g.name = name
	return nil
}
