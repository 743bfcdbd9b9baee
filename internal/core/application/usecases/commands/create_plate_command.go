package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/guard"
)

var ErrCreatePlateCommandIsNotConstructed = errors.New(
	"CreatePlateCommand must be created via NewCreatePlateCommand constructor",
)

// CreatePlateCommand represents a restaurant owner's request to add a plate
// to their restaurant's menu.
type CreatePlateCommand struct { //nolint:recvcheck //using for validation
	plateID      kernel.UUID
	name         string
	description  string
	category     string
	price        kernel.Money
	urlImage     string
	restaurantID kernel.UUID
	actorID      kernel.UUID
	actorRole    role.Role

	guard guard.ConstructorGuard
}

// NewCreatePlateCommand creates a command to add a plate to a menu.
func NewCreatePlateCommand(
	plateID kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Money,
	urlImage string,
	restaurantID kernel.UUID,
	actorID kernel.UUID,
	actorRole role.Role,
) (CreatePlateCommand, error) {
	cmd := CreatePlateCommand{
		name:        name,
		description: description,
		category:    category,
		price:       price,
		urlImage:    urlImage,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPlateID(plateID),
		cmd.setRestaurantID(restaurantID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return CreatePlateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePlateCommand) Validate() error {
	return c.guard.Validate(ErrCreatePlateCommandIsNotConstructed)
}

// PlateID returns the identifier assigned to the new plate.
func (c CreatePlateCommand) PlateID() kernel.UUID {
	return c.plateID
}

// Name returns the plate name.
func (c CreatePlateCommand) Name() string {
	return c.name
}

// Description returns the plate description.
func (c CreatePlateCommand) Description() string {
	return c.description
}

// Category returns the plate category.
func (c CreatePlateCommand) Category() string {
	return c.category
}

// Price returns the plate price.
func (c CreatePlateCommand) Price() kernel.Money {
	return c.price
}

// URLImage returns the link to the plate image.
func (c CreatePlateCommand) URLImage() string {
	return c.urlImage
}

// RestaurantID returns the identifier of the target restaurant.
func (c CreatePlateCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// ActorID returns the identifier of the requesting user.
func (c CreatePlateCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the requesting user.
func (c CreatePlateCommand) ActorRole() role.Role {
	return c.actorRole
}

func (c *CreatePlateCommand) setPlateID(plateID kernel.UUID) error {
	if err := plateID.Validate(); err != nil {
		return err
	}

	c.plateID = plateID
	return nil
}

func (c *CreatePlateCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreatePlateCommand) setActor(actorID kernel.UUID, actorRole role.Role) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
