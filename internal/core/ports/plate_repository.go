package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/plate"
)

// PlateRepository defines the persistence contract for plate entities.
type PlateRepository interface {
	// Add persists a new plate.
	Add(ctx context.Context, p *plate.Plate) error

	// Update persists changes to an existing plate.
	Update(ctx context.Context, p *plate.Plate) error

	// Get retrieves a plate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such plate exists.
	Get(ctx context.Context, id kernel.UUID) (*plate.Plate, error)

	// GetByIDs retrieves the plates for the given identifiers. The result
	// may be shorter than the input when some plates do not exist.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*plate.Plate, error)
}
