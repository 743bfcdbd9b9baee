package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents an administrator's request to register
// a new restaurant for an owner. Field format rules live on the Restaurant
// aggregate; the command only checks identifiers and the actor role.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	nit          string
	address      string
	phone        string
	urlLogo      string
	ownerID      kernel.UUID
	actorRole    role.Role

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name string,
	nit string,
	address string,
	phone string,
	urlLogo string,
	ownerID kernel.UUID,
	actorRole role.Role,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		name:    name,
		nit:     nit,
		address: address,
		phone:   phone,
		urlLogo: urlLogo,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setOwnerID(ownerID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier assigned to the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Nit returns the restaurant tax identifier.
func (c CreateRestaurantCommand) Nit() string {
	return c.nit
}

// Address returns the restaurant address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// Phone returns the restaurant contact phone.
func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

// URLLogo returns the link to the restaurant logo.
func (c CreateRestaurantCommand) URLLogo() string {
	return c.urlLogo
}

// OwnerID returns the identifier of the restaurant's owner.
func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ActorRole returns the role of the requesting user.
func (c CreateRestaurantCommand) ActorRole() role.Role {
	return c.actorRole
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateRestaurantCommand) setActorRole(actorRole role.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
