// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for the read side of the CQRS architecture.
// Query handlers bypass the domain model and read projections directly.
package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/page"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

// ListOrdersByStatusQuery retrieves one page of orders in a given status for
// the restaurant the requesting employee works at.
//
// Example:
//
//	query, err := NewListOrdersByStatusQuery(employeeID, role.Employee, order.Pending, 0, 10)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
type ListOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	actorRole  role.Role
	status     order.Status
	pageReq    page.Request

	guard guard.ConstructorGuard
}

// NewListOrdersByStatusQuery creates a query for a restaurant's orders in
// one status. Page inputs are normalized rather than rejected.
func NewListOrdersByStatusQuery(
	employeeID kernel.UUID,
	actorRole role.Role,
	status order.Status,
	pageNumber int,
	pageSize int,
) (ListOrdersByStatusQuery, error) {
	if err := employeeID.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	if err := actorRole.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	if err := status.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}

	return ListOrdersByStatusQuery{
		employeeID: employeeID,
		actorRole:  actorRole,
		status:     status,
		pageReq:    page.NewRequest(pageNumber, pageSize),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

// EmployeeID returns the identifier of the requesting employee.
func (q ListOrdersByStatusQuery) EmployeeID() kernel.UUID {
	return q.employeeID
}

// ActorRole returns the role of the requesting user.
func (q ListOrdersByStatusQuery) ActorRole() role.Role {
	return q.actorRole
}

// Status returns the status filter.
func (q ListOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// PageRequest returns the normalized page request.
func (q ListOrdersByStatusQuery) PageRequest() page.Request {
	return q.pageReq
}

// OrderItemResponse is one line of an order in a listing.
type OrderItemResponse struct {
	PlateName string
	Quantity  int
	Subtotal  string
}

// OrderResponse is one order in a listing.
type OrderResponse struct {
	ID            kernel.UUID
	ClientEmail   string
	EmployeeEmail string
	Status        string
	TotalAmount   string
	Items         []OrderItemResponse
	CreatedAt     time.Time
}
