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

// DeliverOrderCommandHandler handles the business logic for handing a ready
// order to the client. The supplied security pin must match the one sent to
// the client when the order became ready.
type DeliverOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	validator    services.OrderValidator
	users        ports.UserGateway
	traceability ports.TraceabilityGateway
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.OrderValidator,
	users ports.UserGateway,
	traceability ports.TraceabilityGateway,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory:   uowFactory,
		validator:    validator,
		users:        users,
		traceability: traceability,
	}
}

// Handle processes the delivery command.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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
	if err = o.Deliver(cmd.SecurityPin(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o, observed); err != nil {
		if errors.Is(err, errs.ErrStaleAggregate) {
			return errs.ErrInvalidOrderStatusTransition
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
