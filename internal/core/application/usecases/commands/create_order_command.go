package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemSpec is one requested order line: a plate and a quantity. The plate
// name and price are resolved server-side from the menu, never taken from
// the client.
type ItemSpec struct {
	PlateID  kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a client's request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), clientID, "client@mail.com", "+573001234567",
//	    role.Client, []ItemSpec{{PlateID: plateID, Quantity: 2}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	clientID    kernel.UUID
	clientEmail string
	clientPhone string
	actorRole   role.Role
	items       []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates
// that identifiers are valid, the client email is present, and at least one
// item with a positive quantity is requested.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	clientEmail string,
	clientPhone string,
	actorRole role.Role,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		clientPhone: clientPhone,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setClientEmail(clientEmail),
		cmd.setActorRole(actorRole),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the ordering client.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// ClientEmail returns the ordering client's email.
func (c CreateOrderCommand) ClientEmail() string {
	return c.clientEmail
}

// ClientPhone returns the ordering client's phone, if provided.
func (c CreateOrderCommand) ClientPhone() string {
	return c.clientPhone
}

// ActorRole returns the role of the requesting user.
func (c CreateOrderCommand) ActorRole() role.Role {
	return c.actorRole
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setClientEmail(clientEmail string) error {
	if clientEmail == "" {
		return errs.NewValueIsRequiredError("clientEmail")
	}

	c.clientEmail = clientEmail
	return nil
}

func (c *CreateOrderCommand) setActorRole(actorRole role.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return errs.ErrOrderItemsRequired
	}

	for _, item := range items {
		if err := item.PlateID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.ErrInvalidItemQuantity
		}
	}

	c.items = items
	return nil
}
