package trace

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// StatusChange captures a single order status transition for the
// traceability service. Previous is nil for the creation event.
type StatusChange struct {
	OrderID       kernel.UUID
	ClientID      kernel.UUID
	ClientEmail   string
	Previous      *order.Status
	New           order.Status
	EmployeeID    *kernel.UUID
	EmployeeEmail string
	OccurredAt    time.Time
}

// OrderTrace is one historical status change of an order as reported by the
// traceability service.
type OrderTrace struct {
	OrderID        kernel.UUID
	ClientID       kernel.UUID
	ClientEmail    string
	PreviousStatus string
	NewStatus      string
	EmployeeID     *kernel.UUID
	EmployeeEmail  string
	OccurredAt     time.Time
}

// EmployeeRanking is one employee's efficiency figure as computed by the
// traceability service: how many orders they processed and the average
// duration in minutes. Consumed as-is, never recomputed here.
type EmployeeRanking struct {
	EmployeeID               kernel.UUID
	EmployeeEmail            string
	ProcessedOrders          int
	AverageDurationInMinutes float64
}
