package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand represents an employee's request to mark an order in
// preparation as ready for pickup.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	employeeID kernel.UUID
	actorRole  role.Role

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a command to mark an order as ready.
func NewMarkOrderReadyCommand(
	orderID kernel.UUID,
	employeeID kernel.UUID,
	actorRole role.Role,
) (MarkOrderReadyCommand, error) {
	cmd := MarkOrderReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmployeeID(employeeID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark as ready.
func (c MarkOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the identifier of the acting employee.
func (c MarkOrderReadyCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// ActorRole returns the role of the requesting user.
func (c MarkOrderReadyCommand) ActorRole() role.Role {
	return c.actorRole
}

func (c *MarkOrderReadyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderReadyCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *MarkOrderReadyCommand) setActorRole(actorRole role.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
