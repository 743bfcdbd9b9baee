package queries

import (
	"context"

	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidateOwnerRestaurantQueryHandler answers restaurant ownership checks
// against the local restaurants table.
type ValidateOwnerRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewValidateOwnerRestaurantQueryHandler creates a handler for ownership
// checks.
func NewValidateOwnerRestaurantQueryHandler(db *gorm.DB) ValidateOwnerRestaurantQueryHandler {
	return ValidateOwnerRestaurantQueryHandler{db: db}
}

// Handle executes the ownership check. A missing restaurant is an error; a
// non-owning user is a negative answer, not an error.
func (h ValidateOwnerRestaurantQueryHandler) Handle(
	ctx context.Context,
	query ValidateOwnerRestaurantQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}
	if err := query.ActorRole().EnsureOwner(); err != nil {
		return false, err
	}

	var ownerID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT owner_id
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().String()).Row().Scan(&ownerID)
	if err != nil {
		if isNoRows(err) {
			return false, errs.ErrRestaurantNotFound
		}
		return false, err
	}

	return query.OwnerID().String() == ownerID.String(), nil
}
