package queries

import (
	"context"

	"gorm.io/gorm"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

type GetTableGroupQueryHandler struct {
	db *gorm.DB
}

func NewGetTableGroupQueryHandler(db *gorm.DB) GetTableGroupQueryHandler {
	return GetTableGroupQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the group does not exist.
func (h GetTableGroupQueryHandler) Handle(
	ctx context.Context,
	query GetTableGroupQuery,
) (GetTableGroupQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTableGroupQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(`
		SELECT id, created_date
		FROM table_groups
		WHERE id = ?
	`, query.TableGroupID().Int64()).Rows()
	if err != nil {
		return GetTableGroupQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetTableGroupQueryResponse{}, err
		}
		return GetTableGroupQueryResponse{}, errs.NewObjectNotFoundError("table group", query.TableGroupID().String())
	}

	group := GetTableGroupQueryResponse{OrderTableIDs: make([]kernel.ID, 0)}
	if err = rows.Scan(&group.ID, &group.CreatedDate); err != nil {
		return GetTableGroupQueryResponse{}, err
	}
	group.CreatedDate = group.CreatedDate.UTC()
	_ = rows.Close()

	var memberIDs []int64
	err = db.Raw(`
		SELECT id
		FROM order_tables
		WHERE table_group_id = ?
		ORDER BY id
	`, group.ID.Int64()).Scan(&memberIDs).Error
	if err != nil {
		return GetTableGroupQueryResponse{}, err
	}

	for _, id := range memberIDs {
		group.OrderTableIDs = append(group.OrderTableIDs, kernel.ID(id))
	}

	return group, nil
}
