package queries

import (
	"context"

	"gorm.io/gorm"

	"kitchenpos/internal/core/domain/model/kernel"
)

// GetAllMenusQueryHandler reads menus and their products in two passes
// and stitches them by menu id.
type GetAllMenusQueryHandler struct {
	db *gorm.DB
}

func NewGetAllMenusQueryHandler(db *gorm.DB) GetAllMenusQueryHandler {
	return GetAllMenusQueryHandler{db: db}
}

func (h GetAllMenusQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenusQuery,
) ([]GetAllMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus, err := h.readMenus(ctx)
	if err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return menus, nil
	}

	byID := make(map[kernel.ID]int, len(menus))
	for i, m := range menus {
		byID[m.ID] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_id,
			seq,
			product_id,
			quantity
		FROM menu_products
		ORDER BY menu_id, seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var menuID kernel.ID
		var mp MenuProductResponse
		if err = rows.Scan(&menuID, &mp.Seq, &mp.ProductID, &mp.Quantity); err != nil {
			return nil, err
		}
		if i, ok := byID[menuID]; ok {
			menus[i].MenuProducts = append(menus[i].MenuProducts, mp)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}

func (h GetAllMenusQueryHandler) readMenus(ctx context.Context) ([]GetAllMenusQueryResponse, error) {
	menus := make([]GetAllMenusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			menu_group_id
		FROM menus
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		m := GetAllMenusQueryResponse{MenuProducts: make([]MenuProductResponse, 0)}
		if err = rows.Scan(&m.ID, &m.Name, &m.Price, &m.MenuGroupID); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}
