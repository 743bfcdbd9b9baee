package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// CreateRestaurantCommandHandler handles the business logic for registering
// a restaurant. Only an administrator may register one, the target owner
// must hold the owner role in the user service, and tax identifiers are
// unique across restaurants.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	users      ports.UserGateway
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration.
func NewCreateRestaurantCommandHandler(
	uowFactory RestaurantUoWFactory,
	users ports.UserGateway,
) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

// Handle processes the registration command and returns the persisted
// restaurant.
func (h *CreateRestaurantCommandHandler) Handle(
	ctx context.Context, cmd CreateRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.ActorRole().EnsureAdmin(); err != nil {
		return nil, err
	}

	if !h.users.HasOwnerRole(ctx, cmd.OwnerID()) {
		return nil, errs.ErrUserNotOwner
	}

	r, err := restaurant.NewRestaurant(
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Nit(),
		cmd.Address(),
		cmd.Phone(),
		cmd.URLLogo(),
		cmd.OwnerID(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	exists, err := restaurantRepo.ExistsByNit(ctx, r.Nit())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrRestaurantNitAlreadyExists
	}

	if err = restaurantRepo.Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
