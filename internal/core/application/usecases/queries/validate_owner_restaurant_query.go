package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/guard"
)

var ErrValidateOwnerRestaurantQueryIsNotConstructed = errors.New(
	"ValidateOwnerRestaurantQuery must be created via NewValidateOwnerRestaurantQuery constructor",
)

// ValidateOwnerRestaurantQuery checks whether a user owns a restaurant.
// Other services call this to authorize owner-scoped operations.
type ValidateOwnerRestaurantQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	actorRole    role.Role

	guard guard.ConstructorGuard
}

// NewValidateOwnerRestaurantQuery creates an ownership check query.
func NewValidateOwnerRestaurantQuery(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	actorRole role.Role,
) (ValidateOwnerRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ValidateOwnerRestaurantQuery{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return ValidateOwnerRestaurantQuery{}, err
	}
	if err := actorRole.Validate(); err != nil {
		return ValidateOwnerRestaurantQuery{}, err
	}

	return ValidateOwnerRestaurantQuery{
		restaurantID: restaurantID,
		ownerID:      ownerID,
		actorRole:    actorRole,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ValidateOwnerRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrValidateOwnerRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the checked restaurant.
func (q ValidateOwnerRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OwnerID returns the identifier of the candidate owner.
func (q ValidateOwnerRestaurantQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// ActorRole returns the role of the requesting user.
func (q ValidateOwnerRestaurantQuery) ActorRole() role.Role {
	return q.actorRole
}
