package order

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line of an order owned exclusively by that order. At creation it
// carries only the plate reference and quantity; enrichment snapshots the
// plate name and unit price so the line reflects the menu at order time, not
// the current menu.
//
// Item is an immutable value: Enrich returns a new instance.
type Item struct {
	id        kernel.UUID
	plateID   kernel.UUID
	plateName string
	quantity  int
	unitPrice kernel.Money
	subtotal  kernel.Money

	enriched      bool
	isConstructed bool
}

// NewItem creates an order line referencing a plate.
// Fails INVALID_ITEM_QUANTITY if quantity is not strictly positive.
func NewItem(id kernel.UUID, plateID kernel.UUID, quantity int) (Item, error) {
	if err := errors.Join(id.Validate(), plateID.Validate()); err != nil {
		return Item{}, err
	}

	if quantity <= 0 {
		return Item{}, errs.ErrInvalidItemQuantity
	}

	return Item{
		id:            id,
		plateID:       plateID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a fully enriched item from persistence.
func RestoreItem(
	id kernel.UUID,
	plateID kernel.UUID,
	plateName string,
	quantity int,
	unitPrice kernel.Money,
	subtotal kernel.Money,
) (Item, error) {
	item, err := NewItem(id, plateID, quantity)
	if err != nil {
		return Item{}, err
	}

	item.plateName = plateName
	item.unitPrice = unitPrice
	item.subtotal = subtotal
	item.enriched = true
	return item, nil
}

// Enrich returns a copy of the item carrying the plate-name and unit-price
// snapshot, with subtotal computed as unitPrice × quantity in exact decimal
// arithmetic.
func (i Item) Enrich(plateName string, unitPrice kernel.Money) Item {
	enriched := i
	enriched.plateName = plateName
	enriched.unitPrice = unitPrice
	enriched.subtotal = unitPrice.MultiplyInt(i.quantity)
	enriched.enriched = true
	return enriched
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEnriched reports whether the plate snapshot has been applied.
func (i Item) IsEnriched() bool {
	return i.enriched
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// PlateID returns the referenced plate's identifier.
func (i Item) PlateID() kernel.UUID {
	return i.plateID
}

// PlateName returns the snapshotted plate name.
func (i Item) PlateName() string {
	return i.plateName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the snapshotted price per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unitPrice × quantity.
func (i Item) Subtotal() kernel.Money {
	return i.subtotal
}
