package platerepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/plate"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlateRepository implements PlateRepository using GORM.
type GormPlateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlateRepository creates a new GORM plate repository.
func NewGormPlateRepository(db *gorm.DB, tracker aggregateTracker) *GormPlateRepository {
	return &GormPlateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new plate to the database.
func (r *GormPlateRepository) Add(ctx context.Context, p *plate.Plate) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Update saves an existing plate to the database. Select("*") forces zero
// values through, otherwise deactivating a plate would be silently dropped.
func (r *GormPlateRepository) Update(ctx context.Context, p *plate.Plate) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&PlateDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("plate", p.ID().String())
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Get retrieves a plate by ID.
func (r *GormPlateRepository) Get(ctx context.Context, id kernel.UUID) (*plate.Plate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("plate", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the plates for the given identifiers. The result may be
// shorter than the input when some plates do not exist.
func (r *GormPlateRepository) GetByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]*plate.Plate, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []PlateDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	plates := make([]*plate.Plate, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		plates = append(plates, p)
	}

	return plates, nil
}
