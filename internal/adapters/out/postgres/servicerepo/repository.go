package servicerepo

import (
	"context"
	"errors"

	"gofer/internal/core/domain/model/catalog"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ServiceRepository using GORM.
type GormServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceRepository creates a new GORM catalog repository.
func NewGormServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceRepository {
	return &GormServiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry to the database.
func (r *GormServiceRepository) Add(ctx context.Context, aggregate *catalog.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing catalog entry to the database.
func (r *GormServiceRepository) Update(ctx context.Context, aggregate *catalog.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ServiceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySlug retrieves a catalog entry by its URL-safe identifier.
func (r *GormServiceRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	if slug == "" {
		return nil, errs.NewValueIsRequiredError("slug")
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", slug)
		}
		return nil, err
	}

	return toDomain(dto)
}
