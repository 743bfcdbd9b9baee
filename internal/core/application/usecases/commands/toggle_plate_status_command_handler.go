package commands

import (
	"context"
	"errors"

	"foodcourt/internal/pkg/errs"
)

// TogglePlateStatusCommandHandler handles the business logic for enabling or
// disabling a plate on the menu. All other plate fields are left untouched.
type TogglePlateStatusCommandHandler struct {
	uowFactory PlateUoWFactory
}

// NewTogglePlateStatusCommandHandler creates a handler for the plate status
// toggle.
func NewTogglePlateStatusCommandHandler(uowFactory PlateUoWFactory) TogglePlateStatusCommandHandler {
	return TogglePlateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle command.
func (h *TogglePlateStatusCommandHandler) Handle(ctx context.Context, cmd TogglePlateStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.ActorRole().EnsureOwner(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	plateRepo := uow.PlateRepository()
	p, err := plateRepo.Get(ctx, cmd.PlateID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.ErrPlateNotFound
		}
		return err
	}

	if _, err = findOwnedRestaurant(
		ctx, uow.RestaurantRepository(), p.RestaurantID(), cmd.ActorID(),
	); err != nil {
		return err
	}

	p.SetActive(cmd.Active())

	if err = plateRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
