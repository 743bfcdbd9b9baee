package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/plate"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// CreatePlateCommandHandler handles the business logic for adding a plate to
// a restaurant's menu. The acting user must own the target restaurant.
type CreatePlateCommandHandler struct {
	uowFactory PlateUoWFactory
}

// NewCreatePlateCommandHandler creates a handler for plate creation.
func NewCreatePlateCommandHandler(uowFactory PlateUoWFactory) CreatePlateCommandHandler {
	return CreatePlateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plate creation command and returns the persisted
// plate, which starts out active.
func (h *CreatePlateCommandHandler) Handle(
	ctx context.Context, cmd CreatePlateCommand,
) (*plate.Plate, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.ActorRole().EnsureOwner(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := findOwnedRestaurant(ctx, uow.RestaurantRepository(), cmd.RestaurantID(), cmd.ActorID())
	if err != nil {
		return nil, err
	}

	p, err := plate.NewPlate(
		cmd.PlateID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Category(),
		cmd.Price(),
		cmd.URLImage(),
		r.ID(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.PlateRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// findOwnedRestaurant loads a restaurant and checks that the acting user
// owns it. Shared by the plate write handlers.
func findOwnedRestaurant(
	ctx context.Context,
	restaurantRepo ports.RestaurantRepository,
	restaurantID kernel.UUID,
	actorID kernel.UUID,
) (*restaurant.Restaurant, error) {
	r, err := restaurantRepo.Get(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, err
	}

	if !r.IsOwnedBy(actorID) {
		return nil, errs.ErrRestaurantNotOwner
	}
	return r, nil
}
