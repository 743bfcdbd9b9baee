package restaurant_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(),
		"La Plaza",
		"900123456",
		"Calle 10 #43-12",
		"+573001234567",
		"https://img.example.com/logo.png",
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return r
}

func TestNewRestaurant(t *testing.T) {
	t.Run("creates restaurant with valid fields", func(t *testing.T) {
		r := newValidRestaurant(t)
		assert.Equal(t, "La Plaza", r.Name())
		assert.Equal(t, "900123456", r.Nit())
	})

	t.Run("name with digits and letters is accepted", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(
			kernel.NewUUID(), "Pizzeria 24", "900123456",
			"Calle 10", "+573001234567", "", kernel.NewUUID(),
		)
		require.NoError(t, err)
	})

	t.Run("digits-only name is rejected", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(
			kernel.NewUUID(), "12345", "900123456",
			"Calle 10", "+573001234567", "", kernel.NewUUID(),
		)
		require.ErrorIs(t, err, errs.ErrRestaurantNameInvalid)
	})

	t.Run("non-numeric nit is rejected", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(
			kernel.NewUUID(), "La Plaza", "900-123",
			"Calle 10", "+573001234567", "", kernel.NewUUID(),
		)
		require.ErrorIs(t, err, errs.ErrInvalidNitFormat)
	})

	t.Run("phone formats", func(t *testing.T) {
		valid := []string{"+573001234567", "3001234567", "+1"}
		for _, phone := range valid {
			_, err := restaurant.NewRestaurant(
				kernel.NewUUID(), "La Plaza", "900123456",
				"Calle 10", phone, "", kernel.NewUUID(),
			)
			require.NoError(t, err, "phone %q should be valid", phone)
		}

		invalid := []string{"+57300123456789", "300 123 4567", "phone", "++573001234567"}
		for _, phone := range invalid {
			_, err := restaurant.NewRestaurant(
				kernel.NewUUID(), "La Plaza", "900123456",
				"Calle 10", phone, "", kernel.NewUUID(),
			)
			require.ErrorIs(t, err, errs.ErrInvalidPhoneFormat, "phone %q should be invalid", phone)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(
			kernel.UUID{}, "", "", "", "", "", kernel.UUID{},
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero-value restaurant fails validation", func(t *testing.T) {
		var r restaurant.Restaurant
		require.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}

func TestRestaurant_IsOwnedBy(t *testing.T) {
	ownerID := kernel.NewUUID()
	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), "La Plaza", "900123456",
		"Calle 10", "+573001234567", "", ownerID,
	)
	require.NoError(t, err)

	assert.True(t, r.IsOwnedBy(ownerID))
	assert.False(t, r.IsOwnedBy(kernel.NewUUID()))
}

func TestRestoreRestaurant(t *testing.T) {
	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	r := restaurant.RestoreRestaurant(
		id, "La Plaza", "900123456", "Calle 10",
		"+573001234567", "https://img.example.com/logo.png", ownerID,
	)

	require.NoError(t, r.Validate())
	assert.True(t, r.ID().IsEqual(id))
	assert.True(t, r.OwnerID().IsEqual(ownerID))
}
