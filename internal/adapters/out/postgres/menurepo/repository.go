package menurepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchenpos/internal/adapters/out/postgres/sequence"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"
)

const SequenceName = "menus"

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	Track(aggregate any)
}

func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMenuRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, SequenceName)
}

// Add saves a new menu and its menu products. Products themselves are never written.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}
	if len(dto.MenuProducts) > 0 {
		if err := db.Omit("Product").Create(&dto.MenuProducts).Error; err != nil {
			return err
		}
	}

	r.tracker.Track(aggregate)
	return nil
}

// Get retrieves a menu with its menu products.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.ID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.withProducts(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	m, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.Track(m)
	return m, nil
}

func (r *GormMenuRepository) FindAll(ctx context.Context) ([]*menu.Menu, error) {
	var dtos []MenuDTO
	if err := r.withProducts(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

// FindAllByIDIn returns the menus whose id is listed. Unknown ids are skipped.
func (r *GormMenuRepository) FindAllByIDIn(ctx context.Context, ids []kernel.ID) ([]*menu.Menu, error) {
	if len(ids) == 0 {
		return []*menu.Menu{}, nil
	}

	var dtos []MenuDTO
	err := r.withProducts(ctx).
		Where("id IN ?", kernel.IDsToInt64(ids)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

// CountByIDIn counts the distinct existing menus among ids.
func (r *GormMenuRepository) CountByIDIn(ctx context.Context, ids []kernel.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&MenuDTO{}).
		Where("id IN ?", kernel.IDsToInt64(ids)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *GormMenuRepository) withProducts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("MenuProducts", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		Preload("MenuProducts.Product")
}

func (r *GormMenuRepository) toDomainList(dtos []MenuDTO) ([]*menu.Menu, error) {
	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.tracker.Track(m)
		menus = append(menus, m)
	}

	return menus, nil
}
