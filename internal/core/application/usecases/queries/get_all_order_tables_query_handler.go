package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"kitchenpos/internal/core/domain/model/kernel"
)

type GetAllOrderTablesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrderTablesQueryHandler(db *gorm.DB) GetAllOrderTablesQueryHandler {
	return GetAllOrderTablesQueryHandler{db: db}
}

func (h GetAllOrderTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrderTablesQuery,
) ([]GetAllOrderTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetAllOrderTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_group_id,
			number_of_guests,
			empty
		FROM order_tables
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t GetAllOrderTablesQueryResponse
		var groupID sql.NullInt64
		if err = rows.Scan(&t.ID, &groupID, &t.NumberOfGuests, &t.Empty); err != nil {
			return nil, err
		}
		if groupID.Valid {
			id := kernel.ID(groupID.Int64)
			t.TableGroupID = &id
		}
		tables = append(tables, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
