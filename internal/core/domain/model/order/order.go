package order

import (
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the ordering workflow. It manages the order
// lifecycle from creation through preparation to hand-off or cancellation.
//
// Order maintains these invariants:
//   - All items belong to the single restaurant referenced by restaurantID
//   - totalAmount equals the exact-decimal sum of the item subtotals
//   - securityPin is set if and only if status is Ready or Delivered
//   - employeeID is set if and only if status is InPreparation, Ready, or Delivered
//   - Status transitions follow the Pending → InPreparation → Ready → Delivered
//     chain, with Pending → Cancelled as the only branch
//
// Orders are never physically deleted; Delivered and Cancelled are terminal.
type Order struct {
	id            kernel.UUID
	clientID      kernel.UUID
	clientEmail   string
	clientPhone   string
	restaurantID  kernel.UUID
	employeeID    *kernel.UUID
	employeeEmail string
	items         []Item
	status        Status
	totalAmount   kernel.Money
	securityPin   string
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status from enriched items.
// The total amount is computed here as the exact-decimal sum of the item
// subtotals; callers never supply it.
//
// All items must already carry their plate snapshot (see Item.Enrich); an
// order over un-enriched items would have an undefined total.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	clientEmail string,
	clientPhone string,
	restaurantID kernel.UUID,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClient(clientID, clientEmail, clientPhone),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumSubtotals(o.items)
	o.createdAt = createdAt
	o.updatedAt = createdAt
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, re-checking the
// cross-field invariants so corrupted rows never become live aggregates.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	clientEmail string,
	clientPhone string,
	restaurantID kernel.UUID,
	employeeID *kernel.UUID,
	employeeEmail string,
	items []Item,
	status Status,
	securityPin string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setClient(clientID, clientEmail, clientPhone),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		status.Validate(),
		validateEmployeeConsistency(status, employeeID),
		validatePinConsistency(status, securityPin),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.employeeID = employeeID
	o.employeeEmail = employeeEmail
	o.securityPin = securityPin
	o.totalAmount = sumSubtotals(o.items)
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// ClientEmail returns the client's contact email.
func (o *Order) ClientEmail() string {
	return o.clientEmail
}

// ClientPhone returns the phone number the ready-notification is sent to.
func (o *Order) ClientPhone() string {
	return o.clientPhone
}

// RestaurantID returns the restaurant all items belong to.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Employee returns the assigned employee's ID, or nil while Pending.
func (o *Order) Employee() *kernel.UUID {
	return o.employeeID
}

// EmployeeEmail returns the assigned employee's email, or "" while Pending.
func (o *Order) EmployeeEmail() string {
	return o.employeeEmail
}

// Items returns the order lines in their original sequence.
func (o *Order) Items() []Item {
	return o.items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the exact-decimal sum of the item subtotals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// SecurityPin returns the hand-off pin, or "" before the order is Ready.
func (o *Order) SecurityPin() string {
	return o.securityPin
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign moves the order into InPreparation and attributes it to an employee.
//
// Fails with INVALID_ORDER_STATUS_TRANSITION unless the order is Pending,
// and with ORDER_ALREADY_ASSIGNED if an employee is already attached.
func (o *Order) Assign(employeeID kernel.UUID, employeeEmail string, now time.Time) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	if o.employeeID != nil {
		return errs.ErrOrderAlreadyAssigned
	}

	o.status = newStatus
	o.employeeID = &employeeID
	o.employeeEmail = employeeEmail
	o.updatedAt = now
	return nil
}

// MarkReady moves the order into Ready, attaching the generated security pin.
//
// Fails with INVALID_ORDER_STATUS_TRANSITION unless the order is
// InPreparation. The pin must match ^\d{4}$.
func (o *Order) MarkReady(securityPin string, now time.Time) error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	if !IsValidSecurityPin(securityPin) {
		return errs.NewValueIsInvalidErrorWithCause("securityPin",
			fmt.Errorf("%q is not a 4-digit pin", securityPin))
	}

	o.status = newStatus
	o.securityPin = securityPin
	o.updatedAt = now
	return nil
}

// Deliver moves the order into Delivered after verifying the hand-off pin.
//
// Fails with INVALID_ORDER_STATUS_TRANSITION unless the order is Ready, and
// with INVALID_SECURITY_PIN unless suppliedPin string-equals the stored pin.
// An order that never reached Ready has no pin, so delivery always fails.
func (o *Order) Deliver(suppliedPin string, now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if o.securityPin == "" || o.securityPin != suppliedPin {
		return errs.ErrInvalidSecurityPin
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel moves the order into Cancelled.
//
// Fails with ORDER_CANNOT_BE_CANCELLED unless the order is still Pending.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClient(clientID kernel.UUID, clientEmail, clientPhone string) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	if clientEmail == "" {
		return errs.NewValueIsRequiredError("clientEmail")
	}

	o.clientID = clientID
	o.clientEmail = clientEmail
	o.clientPhone = clientPhone
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.ErrOrderItemsRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.IsEnriched() {
			return errs.NewValueIsRequiredError("item plate snapshot")
		}
	}

	o.items = items
	return nil
}

func sumSubtotals(items []Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func validateEmployeeConsistency(status Status, employeeID *kernel.UUID) error {
	assigned := employeeID != nil
	if assigned && !(status == InPreparation || status == Ready || status == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("employeeId",
			fmt.Errorf("%s order cannot have an employee", status))
	}
	if !assigned && (status == InPreparation || status == Ready || status == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("employeeId",
			fmt.Errorf("%s order must have an employee", status))
	}
	return nil
}

func validatePinConsistency(status Status, securityPin string) error {
	hasPin := securityPin != ""
	if hasPin && !(status == Ready || status == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("securityPin",
			fmt.Errorf("%s order cannot have a security pin", status))
	}
	if !hasPin && (status == Ready || status == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("securityPin",
			fmt.Errorf("%s order must have a security pin", status))
	}
	return nil
}
