// Package sequence allocates aggregate identifiers from the id_sequences table.
// Each row holds the last identifier handed out for one aggregate table.
package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchenpos/internal/core/domain/model/kernel"
)

// SequenceDTO is one named counter.
type SequenceDTO struct {
	Name      string `gorm:"type:varchar(64);primaryKey"`
	LastValue int64  `gorm:"not null;default:0"`
}

func (SequenceDTO) TableName() string {
	return "id_sequences"
}

// Seed creates the counters that do not exist yet. Existing counters keep their value.
func Seed(ctx context.Context, db *gorm.DB, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	rows := make([]SequenceDTO, 0, len(names))
	for _, name := range names {
		rows = append(rows, SequenceDTO{Name: name})
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// Next increments the named counter and returns the new value. Inside a
// transaction the counter row stays locked until commit or rollback, so
// concurrent callers never receive the same value.
func Next(ctx context.Context, db *gorm.DB, name string) (kernel.ID, error) {
	db = db.WithContext(ctx)

	result := db.Model(&SequenceDTO{}).
		Where("name = ?", name).
		UpdateColumn("last_value", gorm.Expr("last_value + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("id sequence %q is not seeded", name)
	}

	var dto SequenceDTO
	if err := db.First(&dto, "name = ?", name).Error; err != nil {
		return 0, err
	}

	return kernel.ID(dto.LastValue), nil
}
