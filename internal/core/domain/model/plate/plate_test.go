package plate_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/plate"
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

func TestNewPlate(t *testing.T) {
	t.Run("creates an active plate", func(t *testing.T) {
		p, err := plate.NewPlate(
			kernel.NewUUID(),
			"Pizza Margherita",
			"Tomato, mozzarella, basil",
			"Italian",
			mustMoney(t, "25000.00"),
			"https://img.example.com/pizza.png",
			kernel.NewUUID(),
		)
		require.NoError(t, err)
		assert.True(t, p.IsActive())
		assert.Equal(t, "Pizza Margherita", p.Name())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := plate.NewPlate(
			kernel.NewUUID(), "", "desc", "Italian",
			mustMoney(t, "25000.00"), "", kernel.NewUUID(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero price", func(t *testing.T) {
		_, err := plate.NewPlate(
			kernel.NewUUID(), "Pizza", "desc", "Italian",
			kernel.ZeroMoney(), "", kernel.NewUUID(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("accepts minimal positive price", func(t *testing.T) {
		price, err := kernel.NewMoneyFromString("0.01")
		require.NoError(t, err)
		p, err := plate.NewPlate(
			kernel.NewUUID(), "Pizza", "desc", "Italian",
			price, "", kernel.NewUUID(),
		)
		require.NoError(t, err)
		require.NotNil(t, p)
	})

	t.Run("zero-value plate fails validation", func(t *testing.T) {
		var p plate.Plate
		require.ErrorIs(t, p.Validate(), plate.ErrPlateIsNotConstructed)
	})
}

func TestPlate_Mutations(t *testing.T) {
	newPlate := func(t *testing.T) *plate.Plate {
		t.Helper()
		p, err := plate.NewPlate(
			kernel.NewUUID(), "Pizza", "desc", "Italian",
			mustMoney(t, "25000.00"), "", kernel.NewUUID(),
		)
		require.NoError(t, err)
		return p
	}

	t.Run("change price", func(t *testing.T) {
		p := newPlate(t)
		require.NoError(t, p.ChangePrice(mustMoney(t, "30000.00")))
		assert.True(t, p.Price().IsEqual(mustMoney(t, "30000.00")))
	})

	t.Run("change price rejects non-positive", func(t *testing.T) {
		p := newPlate(t)
		require.ErrorIs(t, p.ChangePrice(kernel.ZeroMoney()), errs.ErrValueIsInvalid)
		assert.True(t, p.Price().IsEqual(mustMoney(t, "25000.00")))
	})

	t.Run("change description", func(t *testing.T) {
		p := newPlate(t)
		p.ChangeDescription("New description")
		assert.Equal(t, "New description", p.Description())
	})

	t.Run("toggle active", func(t *testing.T) {
		p := newPlate(t)
		p.SetActive(false)
		assert.False(t, p.IsActive())
		p.SetActive(true)
		assert.True(t, p.IsActive())
	})
}

func TestRestorePlate(t *testing.T) {
	id := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	p := plate.RestorePlate(
		id, "Pizza", "desc", "Italian",
		mustMoney(t, "25000.00"), "https://img.example.com/pizza.png",
		restaurantID, false,
	)

	require.NoError(t, p.Validate())
	assert.True(t, p.ID().IsEqual(id))
	assert.False(t, p.IsActive())
	assert.True(t, p.RestaurantID().IsEqual(restaurantID))
}
