package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllProductsQueryHandler lists products ordered by id.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]GetAllProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetAllProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p GetAllProductsQueryResponse
		if err = rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
