package commands

import (
	"context"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/trace"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// AssignOrderCommandHandler handles the business logic for taking a pending
// order into preparation. Only an employee of the order's restaurant may
// assign it, and only one employee wins when several try concurrently.
type AssignOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	validator    services.OrderValidator
	users        ports.UserGateway
	traceability ports.TraceabilityGateway
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.OrderValidator,
	users ports.UserGateway,
	traceability ports.TraceabilityGateway,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory:   uowFactory,
		validator:    validator,
		users:        users,
		traceability: traceability,
	}
}

// Handle processes the assignment command. The status update is a
// compare-and-swap on the PENDING status, so of two concurrent assignments
// exactly one succeeds and the other fails with ErrOrderAlreadyAssigned.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.ActorRole().EnsureEmployee(); err != nil {
		return err
	}

	restaurantID, ok := h.users.GetEmployeeRestaurant(ctx, cmd.EmployeeID())
	if !ok {
		return errs.ErrInsufficientPermissions
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.ErrOrderNotFound
		}
		return err
	}

	if err = h.validator.EnsureBelongsToRestaurant(o, restaurantID); err != nil {
		return err
	}

	observed := o.Status()
	if err = o.Assign(cmd.EmployeeID(), cmd.EmployeeEmail(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o, observed); err != nil {
		if errors.Is(err, errs.ErrStaleAggregate) {
			return errs.ErrOrderAlreadyAssigned
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	previous := observed
	h.traceability.RecordStatusChange(ctx, trace.StatusChange{
		OrderID:       o.ID(),
		ClientID:      o.ClientID(),
		ClientEmail:   o.ClientEmail(),
		Previous:      &previous,
		New:           o.Status(),
		EmployeeID:    o.Employee(),
		EmployeeEmail: o.EmployeeEmail(),
		OccurredAt:    o.UpdatedAt(),
	})

	return nil
}
