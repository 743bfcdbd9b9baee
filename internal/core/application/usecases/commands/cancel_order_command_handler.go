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

// CancelOrderCommandHandler handles the business logic for cancelling a
// pending order. Only the client who placed the order may cancel it, and
// only while no employee has started preparing it.
type CancelOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	validator    services.OrderValidator
	traceability ports.TraceabilityGateway
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.OrderValidator,
	traceability ports.TraceabilityGateway,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		validator:    validator,
		traceability: traceability,
	}
}

// Handle processes the cancellation command. A cancellation racing with an
// assignment loses: the compare-and-swap fails and the client learns the
// order is already in preparation.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.ActorRole().EnsureClient(); err != nil {
		return err
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

	if err = h.validator.EnsureBelongsToClient(o, cmd.ClientID()); err != nil {
		return err
	}

	observed := o.Status()
	if err = o.Cancel(time.Now()); err != nil {
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
		OrderID:     o.ID(),
		ClientID:    o.ClientID(),
		ClientEmail: o.ClientEmail(),
		Previous:    &previous,
		New:         o.Status(),
		OccurredAt:  o.UpdatedAt(),
	})

	return nil
}
