package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrderTracesQueryIsNotConstructed = errors.New(
	"GetOrderTracesQuery must be created via NewGetOrderTracesQuery constructor",
)

// GetOrderTracesQuery retrieves the status history of one of the requesting
// client's orders from the traceability service.
type GetOrderTracesQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	clientID  kernel.UUID
	actorRole role.Role

	guard guard.ConstructorGuard
}

// NewGetOrderTracesQuery creates a query for an order's status history.
func NewGetOrderTracesQuery(
	orderID kernel.UUID,
	clientID kernel.UUID,
	actorRole role.Role,
) (GetOrderTracesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTracesQuery{}, err
	}
	if err := clientID.Validate(); err != nil {
		return GetOrderTracesQuery{}, err
	}
	if err := actorRole.Validate(); err != nil {
		return GetOrderTracesQuery{}, err
	}

	return GetOrderTracesQuery{
		orderID:   orderID,
		clientID:  clientID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTracesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTracesQueryIsNotConstructed)
}

// OrderID returns the identifier of the traced order.
func (q GetOrderTracesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ClientID returns the identifier of the requesting client.
func (q GetOrderTracesQuery) ClientID() kernel.UUID {
	return q.clientID
}

// ActorRole returns the role of the requesting user.
func (q GetOrderTracesQuery) ActorRole() role.Role {
	return q.actorRole
}
