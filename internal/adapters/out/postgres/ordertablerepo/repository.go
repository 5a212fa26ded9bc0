package ordertablerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kitchenpos/internal/adapters/out/postgres/locking"
	"kitchenpos/internal/adapters/out/postgres/sequence"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"
)

const SequenceName = "order_tables"

// GormOrderTableRepository implements ports.OrderTableRepository using GORM.
type GormOrderTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	Track(aggregate any)
}

func NewGormOrderTableRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderTableRepository {
	return &GormOrderTableRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderTableRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, SequenceName)
}

func (r *GormOrderTableRepository) Add(ctx context.Context, aggregate *ordertable.OrderTable) error {
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

// Update writes every column, so a cleared group or a false empty flag is stored too.
func (r *GormOrderTableRepository) Update(ctx context.Context, aggregate *ordertable.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderTableDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order table", aggregate.ID().String())
	}

	r.tracker.Track(aggregate)
	return nil
}

// Get loads the table for update: the row stays locked until the transaction ends.
func (r *GormOrderTableRepository) Get(ctx context.Context, id kernel.ID) (*ordertable.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	if err := locking.ForUpdate(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order table", id.String())
		}
		return nil, err
	}

	t, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.Track(t)
	return t, nil
}

func (r *GormOrderTableRepository) FindAll(ctx context.Context) ([]*ordertable.OrderTable, error) {
	var dtos []OrderTableDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

// FindAllByIDIn returns the tables whose id is listed, locked for update.
// Unknown ids are skipped.
func (r *GormOrderTableRepository) FindAllByIDIn(
	ctx context.Context,
	ids []kernel.ID,
) ([]*ordertable.OrderTable, error) {
	if len(ids) == 0 {
		return []*ordertable.OrderTable{}, nil
	}

	var dtos []OrderTableDTO
	err := locking.ForUpdate(r.db.WithContext(ctx)).
		Where("id IN ?", kernel.IDsToInt64(ids)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

// FindAllByTableGroupID returns the members of the group, locked for update.
func (r *GormOrderTableRepository) FindAllByTableGroupID(
	ctx context.Context,
	tableGroupID kernel.ID,
) ([]*ordertable.OrderTable, error) {
	var dtos []OrderTableDTO
	err := locking.ForUpdate(r.db.WithContext(ctx)).
		Where("table_group_id = ?", tableGroupID.Int64()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

func (r *GormOrderTableRepository) toDomainList(dtos []OrderTableDTO) ([]*ordertable.OrderTable, error) {
	tables := make([]*ordertable.OrderTable, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.tracker.Track(t)
		tables = append(tables, t)
	}

	return tables, nil
}
