package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/trace"
)

// UserGateway exposes the external user service. Implementations are
// fail-closed: when the service is unreachable or answers with an error,
// role checks report false and lookups report not found, so callers deny
// the operation instead of guessing.
type UserGateway interface {
	// HasOwnerRole reports whether the given user holds the owner role.
	HasOwnerRole(ctx context.Context, userID kernel.UUID) bool

	// GetEmployeeRestaurant resolves the restaurant an employee works
	// for. The boolean is false when the user is not an employee of any
	// restaurant or the lookup failed.
	GetEmployeeRestaurant(ctx context.Context, employeeID kernel.UUID) (kernel.UUID, bool)
}

// TraceabilityGateway exposes the external traceability service that records
// every order status change.
type TraceabilityGateway interface {
	// RecordStatusChange reports a status transition. Implementations
	// send best-effort: a failure is logged and swallowed so the order
	// operation itself is never rolled back by an audit outage.
	RecordStatusChange(ctx context.Context, change trace.StatusChange)

	// GetOrderTraces retrieves the full status history of an order.
	// Unlike RecordStatusChange, read failures propagate to the caller.
	GetOrderTraces(ctx context.Context, orderID kernel.UUID) ([]trace.OrderTrace, error)

	// GetEmployeesRanking retrieves the per-employee average completion
	// time report for a restaurant.
	GetEmployeesRanking(ctx context.Context, restaurantID kernel.UUID) ([]trace.EmployeeRanking, error)
}

// NotificationGateway exposes the external messaging service used to tell a
// client their order is ready.
type NotificationGateway interface {
	// SendOrderReadySMS notifies the client with the pickup security pin.
	// Implementations send best-effort: a failure is logged and
	// swallowed.
	SendOrderReadySMS(ctx context.Context, phone string, orderID kernel.UUID, securityPin string)
}
