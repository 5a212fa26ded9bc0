package menugrouprepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kitchenpos/internal/adapters/out/postgres/sequence"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/pkg/errs"
)

const SequenceName = "menu_groups"

// GormMenuGroupRepository implements ports.MenuGroupRepository using GORM.
type GormMenuGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	Track(aggregate any)
}

func NewGormMenuGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuGroupRepository {
	return &GormMenuGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMenuGroupRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, SequenceName)
}

func (r *GormMenuGroupRepository) Add(ctx context.Context, aggregate *menugroup.MenuGroup) error {
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

func (r *GormMenuGroupRepository) Get(ctx context.Context, id kernel.ID) (*menugroup.MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu group", id.String())
		}
		return nil, err
	}

	g, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.Track(g)
	return g, nil
}

func (r *GormMenuGroupRepository) FindAll(ctx context.Context) ([]*menugroup.MenuGroup, error) {
	var dtos []MenuGroupDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	groups := make([]*menugroup.MenuGroup, 0, len(dtos))
	for _, dto := range dtos {
		g, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.tracker.Track(g)
		groups = append(groups, g)
	}

	return groups, nil
}
