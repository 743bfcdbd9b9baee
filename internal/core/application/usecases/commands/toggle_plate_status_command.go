package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/guard"
)

var ErrTogglePlateStatusCommandIsNotConstructed = errors.New(
	"TogglePlateStatusCommand must be created via NewTogglePlateStatusCommand constructor",
)

// TogglePlateStatusCommand represents a restaurant owner's request to enable
// or disable a plate on the menu. It flips the active flag only.
type TogglePlateStatusCommand struct { //nolint:recvcheck //using for validation
	plateID   kernel.UUID
	active    bool
	actorID   kernel.UUID
	actorRole role.Role

	guard guard.ConstructorGuard
}

// NewTogglePlateStatusCommand creates a command to toggle a plate's active
// flag.
func NewTogglePlateStatusCommand(
	plateID kernel.UUID,
	active bool,
	actorID kernel.UUID,
	actorRole role.Role,
) (TogglePlateStatusCommand, error) {
	cmd := TogglePlateStatusCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPlateID(plateID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return TogglePlateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TogglePlateStatusCommand) Validate() error {
	return c.guard.Validate(ErrTogglePlateStatusCommandIsNotConstructed)
}

// PlateID returns the identifier of the plate to toggle.
func (c TogglePlateStatusCommand) PlateID() kernel.UUID {
	return c.plateID
}

// Active returns the desired state of the plate's active flag.
func (c TogglePlateStatusCommand) Active() bool {
	return c.active
}

// ActorID returns the identifier of the requesting user.
func (c TogglePlateStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the requesting user.
func (c TogglePlateStatusCommand) ActorRole() role.Role {
	return c.actorRole
}

func (c *TogglePlateStatusCommand) setPlateID(plateID kernel.UUID) error {
	if err := plateID.Validate(); err != nil {
		return err
	}

	c.plateID = plateID
	return nil
}

func (c *TogglePlateStatusCommand) setActor(actorID kernel.UUID, actorRole role.Role) error {
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
