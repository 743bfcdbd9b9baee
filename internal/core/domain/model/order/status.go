package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> InPreparation ──> Ready ──> Delivered
//	   │
//	   └──────> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions are allowed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be claimed by an employee.
	Pending

	// InPreparation indicates an employee has taken the order.
	InPreparation

	// Ready indicates the order is prepared and waiting for pick-up.
	// Entering this status generates the security pin.
	Ready

	// Delivered indicates the order was handed off after pin verification.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the client withdrew the order while it was
	// still pending. This is a terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"PENDING":        Pending,
		"IN_PREPARATION": InPreparation,
		"READY":          Ready,
		"DELIVERED":      Delivered,
		"CANCELLED":      Cancelled,
	}
}

// StatusFromString parses a status literal such as "PENDING".
// Returns an error for any other value.
func StatusFromString(s string) (Status, error) {
	status, ok := getValidStatusStrings()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", s))
	}
	return status, nil
}

// Validate checks if the Status value is one of the five valid states.
func (s Status) Validate() error {
	switch s {
	case Pending, InPreparation, Ready, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the status literal, or "UNKNOWN" for invalid values.
// The literals are stable and used in persistence, traces, and the API.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the order still occupies the client's single
// active-order slot (Pending, InPreparation, or Ready).
func (s Status) IsActive() bool {
	return s == Pending || s == InPreparation || s == Ready
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Assign transitions the status to InPreparation.
//
// Valid transitions:
//   - Pending -> InPreparation
//
// Returns INVALID_ORDER_STATUS_TRANSITION for any other pre-state.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.ErrInvalidOrderStatusTransition
	}
	return InPreparation, nil
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - InPreparation -> Ready
//
// Returns INVALID_ORDER_STATUS_TRANSITION for any other pre-state.
func (s Status) MarkReady() (Status, error) {
	if s != InPreparation {
		return Unknown, errs.ErrInvalidOrderStatusTransition
	}
	return Ready, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Ready -> Delivered
//
// Returns INVALID_ORDER_STATUS_TRANSITION for any other pre-state.
func (s Status) Deliver() (Status, error) {
	if s != Ready {
		return Unknown, errs.ErrInvalidOrderStatusTransition
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Returns ORDER_CANNOT_BE_CANCELLED for any other pre-state: once an
// employee has started preparation the client can no longer withdraw.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.ErrOrderCannotBeCancelled
	}
	return Cancelled, nil
}
