package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetAllMenuGroupsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllMenuGroupsQueryHandler(db *gorm.DB) GetAllMenuGroupsQueryHandler {
	return GetAllMenuGroupsQueryHandler{db: db}
}

// Handle lists menu groups ordered by id.
func (h GetAllMenuGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenuGroupsQuery,
) ([]GetAllMenuGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]GetAllMenuGroupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM menu_groups
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var g GetAllMenuGroupsQueryResponse
		if err = rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
