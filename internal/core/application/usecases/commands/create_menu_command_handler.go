package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// CreateMenuCommandHandler creates menus after checking that the menu group and
// every referenced product exist.
type CreateMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateMenuCommandHandler(uowFactory CatalogUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the menu.
//
// Errors:
//   - errs.InvalidArgumentError when the menu group or a product does not exist,
//     or when the menu price exceeds the sum of its products
//
// A menu requested without products is created as is, whatever its price.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewInvalidArgumentError(fmt.Sprintf("menu group %s does not exist", cmd.MenuGroupID()))
		}
		return nil, err
	}

	productRepo := uow.ProductRepository()
	menuRepo := uow.MenuRepository()

	products, err := loadProducts(ctx, productRepo, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	id, err := menuRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	m, err := menu.NewMenu(id, cmd.Name(), cmd.Price(), cmd.MenuGroupID())
	if err != nil {
		return nil, err
	}

	items := make([]menu.MenuProduct, 0, len(cmd.menuProducts))
	for _, line := range cmd.menuProducts {
		mp, err := menu.NewMenuProduct(products[line.productID], line.quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, mp)
	}

	// a menu without products keeps its price unchecked until products are added
	if len(items) > 0 {
		if err = m.AddMenuProducts(items); err != nil {
			return nil, err
		}
	}

	if err = menuRepo.Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// loadProducts fetches the distinct products among ids, failing when any is missing.
func loadProducts(
	ctx context.Context,
	repo ports.ProductRepository,
	ids []kernel.ID,
) (map[kernel.ID]*product.Product, error) {
	if len(ids) == 0 {
		return map[kernel.ID]*product.Product{}, nil
	}

	distinct := slices.Compact(slices.Sorted(slices.Values(ids)))
	found, err := repo.FindAllByIDIn(ctx, distinct)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.ID]*product.Product, len(found))
	for _, p := range found {
		byID[p.ID()] = p
	}
	for _, id := range distinct {
		if _, ok := byID[id]; !ok {
			return nil, errs.NewInvalidArgumentError(fmt.Sprintf("product %s does not exist", id))
		}
	}

	return byID, nil
}
