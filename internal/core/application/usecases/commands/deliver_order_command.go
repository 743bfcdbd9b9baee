package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents an employee's request to hand a ready order
// to the client, authenticated by the pickup security pin.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	employeeID  kernel.UUID
	securityPin string
	actorRole   role.Role

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver a ready order.
func NewDeliverOrderCommand(
	orderID kernel.UUID,
	employeeID kernel.UUID,
	securityPin string,
	actorRole role.Role,
) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmployeeID(employeeID),
		cmd.setSecurityPin(securityPin),
		cmd.setActorRole(actorRole),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the identifier of the acting employee.
func (c DeliverOrderCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// SecurityPin returns the pin supplied by the client at pickup.
func (c DeliverOrderCommand) SecurityPin() string {
	return c.securityPin
}

// ActorRole returns the role of the requesting user.
func (c DeliverOrderCommand) ActorRole() role.Role {
	return c.actorRole
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *DeliverOrderCommand) setSecurityPin(securityPin string) error {
	if securityPin == "" {
		return errs.NewValueIsRequiredError("securityPin")
	}

	c.securityPin = securityPin
	return nil
}

func (c *DeliverOrderCommand) setActorRole(actorRole role.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
