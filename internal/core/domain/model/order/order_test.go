package order_test

import (
	"testing"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func enrichedItem(t *testing.T, quantity int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity)
	require.NoError(t, err)
	return item.Enrich("Pizza Margherita", mustMoney(t, price))
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"client@mail.com",
		"+573001234567",
		kernel.NewUUID(),
		[]order.Item{enrichedItem(t, 2, "25000.00")},
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3)
		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity())
		assert.False(t, item.IsEnriched())
	})

	t.Run("zero quantity fails", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrInvalidItemQuantity)
	})

	t.Run("negative quantity fails", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), -1)
		require.ErrorIs(t, err, errs.ErrInvalidItemQuantity)
	})

	t.Run("zero-value item fails validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestItem_Enrich(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2)
	require.NoError(t, err)

	enriched := item.Enrich("Pizza Margherita", mustMoney(t, "25000.00"))

	assert.Equal(t, "Pizza Margherita", enriched.PlateName())
	assert.True(t, enriched.Subtotal().IsEqual(mustMoney(t, "50000.00")))
	assert.True(t, enriched.IsEnriched())
	// original is untouched
	assert.False(t, item.IsEnriched())
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with exact total", func(t *testing.T) {
		items := []order.Item{
			enrichedItem(t, 2, "25000.00"),
			enrichedItem(t, 1, "12500.50"),
		}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"client@mail.com", "+573001234567",
			kernel.NewUUID(), items, time.Now(),
		)
		require.NoError(t, err)

		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.TotalAmount().IsEqual(mustMoney(t, "62500.50")))
		assert.Nil(t, o.Employee())
		assert.Empty(t, o.SecurityPin())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("no items fails ORDER_ITEMS_REQUIRED", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"client@mail.com", "",
			kernel.NewUUID(), nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrOrderItemsRequired)
	})

	t.Run("un-enriched item is rejected", func(t *testing.T) {
		raw, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"client@mail.com", "",
			kernel.NewUUID(), []order.Item{raw}, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("missing client email is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"", "",
			kernel.NewUUID(), []order.Item{enrichedItem(t, 1, "10.00")}, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("zero-value order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("pending unassigned order is assigned", func(t *testing.T) {
		o := pendingOrder(t)
		employeeID := kernel.NewUUID()

		err := o.Assign(employeeID, "employee@mail.com", time.Now())
		require.NoError(t, err)

		assert.Equal(t, order.InPreparation, o.Status())
		require.NotNil(t, o.Employee())
		assert.True(t, o.Employee().IsEqual(employeeID))
		assert.Equal(t, "employee@mail.com", o.EmployeeEmail())
	})

	t.Run("second assignment fails", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), "first@mail.com", time.Now()))

		err := o.Assign(kernel.NewUUID(), "second@mail.com", time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatusTransition)
	})

	t.Run("cancelled order cannot be assigned", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.Cancel(time.Now()))

		err := o.Assign(kernel.NewUUID(), "employee@mail.com", time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatusTransition)
	})
}

func TestOrder_MarkReady(t *testing.T) {
	t.Run("in-preparation order becomes ready with pin", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), "employee@mail.com", time.Now()))

		err := o.MarkReady("0042", time.Now())
		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, "0042", o.SecurityPin())
	})

	t.Run("pending order cannot be marked ready", func(t *testing.T) {
		o := pendingOrder(t)
		err := o.MarkReady("1234", time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatusTransition)
	})

	t.Run("malformed pin is rejected", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), "employee@mail.com", time.Now()))

		require.Error(t, o.MarkReady("12345", time.Now()))
		require.Error(t, o.MarkReady("12a4", time.Now()))
		require.Error(t, o.MarkReady("", time.Now()))
	})
}

func TestOrder_Deliver(t *testing.T) {
	readyOrder := func(t *testing.T, pin string) *order.Order {
		t.Helper()
		o := pendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), "employee@mail.com", time.Now()))
		require.NoError(t, o.MarkReady(pin, time.Now()))
		return o
	}

	t.Run("correct pin delivers", func(t *testing.T) {
		o := readyOrder(t, "0042")
		require.NoError(t, o.Deliver("0042", time.Now()))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("wrong pin fails INVALID_SECURITY_PIN", func(t *testing.T) {
		o := readyOrder(t, "0042")
		err := o.Deliver("4200", time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidSecurityPin)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("order that never reached ready cannot be delivered", func(t *testing.T) {
		o := pendingOrder(t)
		err := o.Deliver("0042", time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatusTransition)
	})

	t.Run("delivered order is terminal", func(t *testing.T) {
		o := readyOrder(t, "0042")
		require.NoError(t, o.Deliver("0042", time.Now()))
		require.ErrorIs(t, o.Deliver("0042", time.Now()), errs.ErrInvalidOrderStatusTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order is cancelled", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.Cancel(time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("in-preparation order cannot be cancelled", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), "employee@mail.com", time.Now()))

		err := o.Cancel(time.Now())
		require.ErrorIs(t, err, errs.ErrOrderCannotBeCancelled)
		assert.Equal(t, order.InPreparation, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	clientID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	now := time.Now()

	items := []order.Item{enrichedItem(t, 2, "25000.00")}

	t.Run("restores a ready order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, clientID, "client@mail.com", "+573001234567",
			restaurantID, &employeeID, "employee@mail.com",
			items, order.Ready, "0042", now, now,
		)
		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.True(t, o.TotalAmount().IsEqual(mustMoney(t, "50000.00")))
	})

	t.Run("rejects pending order with employee", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, clientID, "client@mail.com", "",
			restaurantID, &employeeID, "employee@mail.com",
			items, order.Pending, "", now, now,
		)
		require.Error(t, err)
	})

	t.Run("rejects ready order without pin", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, clientID, "client@mail.com", "",
			restaurantID, &employeeID, "employee@mail.com",
			items, order.Ready, "", now, now,
		)
		require.Error(t, err)
	})

	t.Run("rejects in-preparation order without employee", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, clientID, "client@mail.com", "",
			restaurantID, nil, "",
			items, order.InPreparation, "", now, now,
		)
		require.Error(t, err)
	})
}
