package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"kitchenpos/internal/adapters/out/postgres/menugrouprepo"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/ordertablerepo"
	"kitchenpos/internal/adapters/out/postgres/outboxrepo"
	"kitchenpos/internal/adapters/out/postgres/productrepo"
	"kitchenpos/internal/adapters/out/postgres/sequence"
	"kitchenpos/internal/adapters/out/postgres/tablegrouprepo"
)

// Migrate creates or updates every table and seeds the id sequences.
// It works on PostgreSQL and SQLite.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&sequence.SequenceDTO{},
		&productrepo.ProductDTO{},
		&menugrouprepo.MenuGroupDTO{},
		&menurepo.MenuDTO{},
		&menurepo.MenuProductDTO{},
		&tablegrouprepo.TableGroupDTO{},
		&ordertablerepo.OrderTableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineItemDTO{},
		&outboxrepo.MessageDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return sequence.Seed(ctx, db, SequenceNames()...)
}

// SequenceNames lists the id sequence of every aggregate table.
func SequenceNames() []string {
	return []string{
		productrepo.SequenceName,
		menugrouprepo.SequenceName,
		menurepo.SequenceName,
		ordertablerepo.SequenceName,
		tablegrouprepo.SequenceName,
		orderrepo.SequenceName,
	}
}
