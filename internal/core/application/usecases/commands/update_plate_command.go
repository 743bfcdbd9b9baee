package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdatePlateCommandIsNotConstructed = errors.New(
	"UpdatePlateCommand must be created via NewUpdatePlateCommand constructor",
)

// UpdatePlateCommand represents a restaurant owner's request to change a
// plate's price and description. No other plate field is mutable.
type UpdatePlateCommand struct { //nolint:recvcheck //using for validation
	plateID     kernel.UUID
	price       kernel.Money
	description string
	actorID     kernel.UUID
	actorRole   role.Role

	guard guard.ConstructorGuard
}

// NewUpdatePlateCommand creates a command to update a plate.
func NewUpdatePlateCommand(
	plateID kernel.UUID,
	price kernel.Money,
	description string,
	actorID kernel.UUID,
	actorRole role.Role,
) (UpdatePlateCommand, error) {
	cmd := UpdatePlateCommand{
		price:       price,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPlateID(plateID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return UpdatePlateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePlateCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePlateCommandIsNotConstructed)
}

// PlateID returns the identifier of the plate to update.
func (c UpdatePlateCommand) PlateID() kernel.UUID {
	return c.plateID
}

// Price returns the new plate price.
func (c UpdatePlateCommand) Price() kernel.Money {
	return c.price
}

// Description returns the new plate description.
func (c UpdatePlateCommand) Description() string {
	return c.description
}

// ActorID returns the identifier of the requesting user.
func (c UpdatePlateCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the requesting user.
func (c UpdatePlateCommand) ActorRole() role.Role {
	return c.actorRole
}

func (c *UpdatePlateCommand) setPlateID(plateID kernel.UUID) error {
	if err := plateID.Validate(); err != nil {
		return err
	}

	c.plateID = plateID
	return nil
}

func (c *UpdatePlateCommand) setActor(actorID kernel.UUID, actorRole role.Role) error {
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
