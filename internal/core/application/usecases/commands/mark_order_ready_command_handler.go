package commands

import (
	"context"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/trace"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// MarkOrderReadyCommandHandler handles the business logic for marking an
// order as ready. It generates the pickup security pin and notifies the
// client by SMS once the transition is committed.
type MarkOrderReadyCommandHandler struct {
	uowFactory    OrderUoWFactory
	validator     services.OrderValidator
	users         ports.UserGateway
	traceability  ports.TraceabilityGateway
	notifications ports.NotificationGateway
}

// NewMarkOrderReadyCommandHandler creates a handler for the ready transition.
func NewMarkOrderReadyCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.OrderValidator,
	users ports.UserGateway,
	traceability ports.TraceabilityGateway,
	notifications ports.NotificationGateway,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory:    uowFactory,
		validator:     validator,
		users:         users,
		traceability:  traceability,
		notifications: notifications,
	}
}

// Handle processes the ready command. The SMS with the security pin goes out
// only after the transition is committed, so the client is never told about
// a pin that was rolled back.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	securityPin, err := order.NewSecurityPin()
	if err != nil {
		return err
	}

	observed := o.Status()
	if err = o.MarkReady(securityPin, time.Now()); err != nil {
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

	if o.ClientPhone() != "" {
		h.notifications.SendOrderReadySMS(ctx, o.ClientPhone(), o.ID(), o.SecurityPin())
	}

	return nil
}
