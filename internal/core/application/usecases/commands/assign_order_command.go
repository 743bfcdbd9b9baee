package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents an employee's request to take a pending
// order into preparation.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	employeeID    kernel.UUID
	employeeEmail string
	actorRole     role.Role

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to an employee.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	employeeID kernel.UUID,
	employeeEmail string,
	actorRole role.Role,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmployee(employeeID, employeeEmail),
		cmd.setActorRole(actorRole),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the identifier of the assigning employee.
func (c AssignOrderCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// EmployeeEmail returns the assigning employee's email.
func (c AssignOrderCommand) EmployeeEmail() string {
	return c.employeeEmail
}

// ActorRole returns the role of the requesting user.
func (c AssignOrderCommand) ActorRole() role.Role {
	return c.actorRole
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setEmployee(employeeID kernel.UUID, employeeEmail string) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	if employeeEmail == "" {
		return errs.NewValueIsRequiredError("employeeEmail")
	}

	c.employeeID = employeeID
	c.employeeEmail = employeeEmail
	return nil
}

func (c *AssignOrderCommand) setActorRole(actorRole role.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
