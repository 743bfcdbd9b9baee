package commands

import (
	"context"
	"errors"

	"foodcourt/internal/pkg/errs"
)

// UpdatePlateCommandHandler handles the business logic for changing a
// plate's price and description.
type UpdatePlateCommandHandler struct {
	uowFactory PlateUoWFactory
}

// NewUpdatePlateCommandHandler creates a handler for plate updates.
func NewUpdatePlateCommandHandler(uowFactory PlateUoWFactory) UpdatePlateCommandHandler {
	return UpdatePlateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plate update command.
func (h *UpdatePlateCommandHandler) Handle(ctx context.Context, cmd UpdatePlateCommand) error {
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

	if err = p.ChangePrice(cmd.Price()); err != nil {
		return err
	}
	p.ChangeDescription(cmd.Description())

	if err = plateRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
