package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchenpos/internal/adapters/out/postgres/ordertablerepo"
	"kitchenpos/internal/adapters/out/postgres/locking"
	"kitchenpos/internal/adapters/out/postgres/sequence"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

const SequenceName = "orders"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	Track(aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, SequenceName)
}

// Add saves a new order with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}
	if err := db.Create(&dto.LineItems).Error; err != nil {
		return err
	}

	r.tracker.Track(aggregate)
	return nil
}

// Update saves an existing order. Line items are rewritten in order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("order_table_id", "status", "ordered_time").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderLineItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Create(&dto.LineItems).Error; err != nil {
		return err
	}

	r.tracker.Track(aggregate)
	return nil
}

// Get retrieves an order by ID and locks its row until the transaction ends.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := locking.ForUpdate(r.withLineItems(ctx)).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	o, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.Track(o)
	return o, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withLineItems(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

// ExistsByOrderTableIDAndStatusIn reports whether the table has an order in one of statuses.
func (r *GormOrderRepository) ExistsByOrderTableIDAndStatusIn(
	ctx context.Context,
	orderTableID kernel.ID,
	statuses []order.Status,
) (bool, error) {
	if len(statuses) == 0 {
		return false, nil
	}

	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_table_id = ? AND status IN ?", orderTableID.Int64(), names).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// FindByTableGroupID returns the orders of every table currently in the group.
func (r *GormOrderRepository) FindByTableGroupID(ctx context.Context, tableGroupID kernel.ID) ([]*order.Order, error) {
	members := r.db.WithContext(ctx).
		Model(&ordertablerepo.OrderTableDTO{}).
		Select("id").
		Where("table_group_id = ?", tableGroupID.Int64())

	var dtos []OrderDTO
	err := r.withLineItems(ctx).
		Where("order_table_id IN (?)", members).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

func (r *GormOrderRepository) withLineItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	})
}

func (r *GormOrderRepository) toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.tracker.Track(o)
		orders = append(orders, o)
	}

	return orders, nil
}
