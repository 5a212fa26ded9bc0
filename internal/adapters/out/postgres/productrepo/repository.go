package productrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kitchenpos/internal/adapters/out/postgres/sequence"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"
)

// SequenceName is the id_sequences row for products.
const SequenceName = "products"

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	Track(aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return sequence.Next(ctx, r.db, SequenceName)
}

// Add saves a new product.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	p, err := ToDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.Track(p)
	return p, nil
}

// FindAll returns every product ordered by id.
func (r *GormProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

// FindAllByIDIn returns the products whose id is listed. Unknown ids are skipped.
func (r *GormProductRepository) FindAllByIDIn(ctx context.Context, ids []kernel.ID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("id IN ?", kernel.IDsToInt64(ids)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

func (r *GormProductRepository) toDomainList(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		r.tracker.Track(p)
		products = append(products, p)
	}

	return products, nil
}
