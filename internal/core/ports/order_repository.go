package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status, client, and restaurant.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using a
	// compare-and-swap on the status the caller observed before applying
	// the transition. Returns errs.ErrStaleAggregate when the stored
	// status no longer matches, meaning a concurrent transition won.
	Update(ctx context.Context, aggregate *order.Order, observedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByClient retrieves the client's orders that are in a
	// non-terminal status. Used to enforce the one-active-order rule.
	GetActiveByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error)
}
