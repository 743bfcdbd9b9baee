package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant.
	Add(ctx context.Context, r *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// ExistsByNit reports whether a restaurant with the given tax
	// identifier is already registered.
	ExistsByNit(ctx context.Context, nit string) (bool, error)
}
