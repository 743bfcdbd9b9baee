package services

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/plate"
	"foodcourt/internal/pkg/errs"
)

// OrderValidator holds the stateless business checks that guard the order
// lifecycle operations. The checks are composed by the command handlers in a
// fixed sequence, each one assuming the previous ones passed.
type OrderValidator interface {
	// ValidateStructure checks that the order has at least one item and
	// that every item quantity is strictly positive.
	ValidateStructure(items []order.Item) error

	// EnsureNoActiveOrders fails when the client already has an order in a
	// non-terminal status.
	EnsureNoActiveOrders(activeOrders []*order.Order) error

	// SameRestaurant checks that all plates belong to a single restaurant
	// and returns that restaurant's identifier.
	SameRestaurant(plates []*plate.Plate) (kernel.UUID, error)

	// EnsureBelongsToRestaurant checks that an employee of the given
	// restaurant may act on the order.
	EnsureBelongsToRestaurant(o *order.Order, restaurantID kernel.UUID) error

	// EnsureBelongsToClient checks that the order was placed by the given
	// client.
	EnsureBelongsToClient(o *order.Order, clientID kernel.UUID) error
}

var _ OrderValidator = &orderValidator{}

type orderValidator struct{}

// NewOrderValidator creates the OrderValidator domain service.
func NewOrderValidator() OrderValidator {
	return &orderValidator{}
}

func (v *orderValidator) ValidateStructure(items []order.Item) error {
	if len(items) == 0 {
		return errs.ErrOrderItemsRequired
	}
	for _, item := range items {
		if item.Quantity() <= 0 {
			return errs.ErrInvalidItemQuantity
		}
	}
	return nil
}

func (v *orderValidator) EnsureNoActiveOrders(activeOrders []*order.Order) error {
	for _, o := range activeOrders {
		if o.Status().IsActive() {
			return errs.ErrCustomerHasActiveOrder
		}
	}
	return nil
}

func (v *orderValidator) SameRestaurant(plates []*plate.Plate) (kernel.UUID, error) {
	if len(plates) == 0 {
		return kernel.UUID{}, errs.ErrOrderItemsRequired
	}

	restaurantID := plates[0].RestaurantID()
	for _, p := range plates[1:] {
		if !p.RestaurantID().IsEqual(restaurantID) {
			return kernel.UUID{}, errs.ErrOrderPlatesDifferentRestaurants
		}
	}
	return restaurantID, nil
}

func (v *orderValidator) EnsureBelongsToRestaurant(o *order.Order, restaurantID kernel.UUID) error {
	if !o.RestaurantID().IsEqual(restaurantID) {
		return errs.ErrInsufficientPermissions
	}
	return nil
}

func (v *orderValidator) EnsureBelongsToClient(o *order.Order, clientID kernel.UUID) error {
	if !o.ClientID().IsEqual(clientID) {
		return errs.ErrInsufficientPermissions
	}
	return nil
}
