package commands_test

import (
	"testing"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// newPendingOrder builds a freshly placed order for a known client and
// restaurant.
func newPendingOrder(t *testing.T, clientID, restaurantID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2)
	require.NoError(t, err)

	price, err := kernel.NewMoneyFromString("25000.00")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), clientID, "client@mail.com", "+573001234567",
		restaurantID, []order.Item{item.Enrich("Pizza", price)}, time.Now(),
	)
	require.NoError(t, err)
	return o
}

// newInPreparationOrder builds an order already taken by the given employee.
func newInPreparationOrder(t *testing.T, restaurantID, employeeID kernel.UUID) *order.Order {
	t.Helper()

	o := newPendingOrder(t, kernel.NewUUID(), restaurantID)
	require.NoError(t, o.Assign(employeeID, "employee@mail.com", time.Now()))
	return o
}

// newReadyOrder builds an order waiting for pickup with a known pin.
func newReadyOrder(t *testing.T, restaurantID, employeeID kernel.UUID, pin string) *order.Order {
	t.Helper()

	o := newInPreparationOrder(t, restaurantID, employeeID)
	require.NoError(t, o.MarkReady(pin, time.Now()))
	return o
}
