package tablegrouprepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kitchenpos/internal/adapters/out/postgres/ordertablerepo"
	"kitchenpos/internal/adapters/out/postgres/locking"
	"kitchenpos/internal/adapters/out/postgres/sequence"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/tablegroup"
	"kitchenpos/internal/pkg/errs"
)

const SequenceName = "table_groups"

// GormTableGroupRepository implements ports.TableGroupRepository using GORM.
type GormTableGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	Track(aggregate any)
}

func NewGormTableGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormTableGroupRepository {
	return &GormTableGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTableGroupRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, SequenceName)
}

// Add saves the group row. Member tables are written by the order table repository.
func (r *GormTableGroupRepository) Add(ctx context.Context, aggregate *tablegroup.TableGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.Track(aggregate)
	return nil
}

// Get retrieves a group together with the ids of the tables currently in it.
// The group row is locked for update.
func (r *GormTableGroupRepository) Get(ctx context.Context, id kernel.ID) (*tablegroup.TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto TableGroupDTO
	if err := locking.ForUpdate(db).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table group", id.String())
		}
		return nil, err
	}

	var memberIDs []int64
	err := db.Model(&ordertablerepo.OrderTableDTO{}).
		Where("table_group_id = ?", dto.ID).
		Order("id").
		Pluck("id", &memberIDs).Error
	if err != nil {
		return nil, err
	}

	g, err := toDomain(dto, memberIDs)
	if err != nil {
		return nil, err
	}

	r.tracker.Track(g)
	return g, nil
}
