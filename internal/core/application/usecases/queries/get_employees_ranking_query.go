package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/guard"
)

var ErrGetEmployeesRankingQueryIsNotConstructed = errors.New(
	"GetEmployeesRankingQuery must be created via NewGetEmployeesRankingQuery constructor",
)

// GetEmployeesRankingQuery retrieves the per-employee efficiency report of a
// restaurant from the traceability service. Only the restaurant's owner may
// request it.
type GetEmployeesRankingQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	actorRole    role.Role

	guard guard.ConstructorGuard
}

// NewGetEmployeesRankingQuery creates a query for the efficiency report.
func NewGetEmployeesRankingQuery(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	actorRole role.Role,
) (GetEmployeesRankingQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetEmployeesRankingQuery{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return GetEmployeesRankingQuery{}, err
	}
	if err := actorRole.Validate(); err != nil {
		return GetEmployeesRankingQuery{}, err
	}

	return GetEmployeesRankingQuery{
		restaurantID: restaurantID,
		ownerID:      ownerID,
		actorRole:    actorRole,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeesRankingQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeesRankingQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the reported restaurant.
func (q GetEmployeesRankingQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OwnerID returns the identifier of the requesting owner.
func (q GetEmployeesRankingQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// ActorRole returns the role of the requesting user.
func (q GetEmployeesRankingQuery) ActorRole() role.Role {
	return q.actorRole
}
