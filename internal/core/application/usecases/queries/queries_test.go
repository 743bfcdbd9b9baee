package queries_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersByStatusQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewListOrdersByStatusQuery(
			kernel.NewUUID(), role.Employee, order.Pending, 0, 10,
		)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, order.Pending, query.Status())
	})

	t.Run("page inputs are normalized", func(t *testing.T) {
		query, err := queries.NewListOrdersByStatusQuery(
			kernel.NewUUID(), role.Employee, order.Ready, -3, 0,
		)
		require.NoError(t, err)
		assert.Equal(t, 0, query.PageRequest().Number)
		assert.Equal(t, 10, query.PageRequest().Size)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := queries.NewListOrdersByStatusQuery(
			kernel.NewUUID(), role.Employee, order.Unknown, 0, 10,
		)
		require.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.ListOrdersByStatusQuery{}
		require.ErrorIs(t, query.Validate(), queries.ErrListOrdersByStatusQueryIsNotConstructed)
	})
}

func TestNewListRestaurantsQuery(t *testing.T) {
	query := queries.NewListRestaurantsQuery(2, 25)
	require.NoError(t, query.Validate())
	assert.Equal(t, 50, query.PageRequest().Offset())

	empty := queries.ListRestaurantsQuery{}
	require.ErrorIs(t, empty.Validate(), queries.ErrListRestaurantsQueryIsNotConstructed)
}

func TestNewListPlatesByRestaurantQuery(t *testing.T) {
	t.Run("valid with category filter", func(t *testing.T) {
		query, err := queries.NewListPlatesByRestaurantQuery(kernel.NewUUID(), "Italian", 0, 10)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "Italian", query.Category())
	})

	t.Run("invalid restaurant id", func(t *testing.T) {
		_, err := queries.NewListPlatesByRestaurantQuery(kernel.UUID{}, "", 0, 10)
		require.Error(t, err)
	})
}

func TestNewGetOrderTracesQuery(t *testing.T) {
	query, err := queries.NewGetOrderTracesQuery(kernel.NewUUID(), kernel.NewUUID(), role.Client)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetOrderTracesQuery(kernel.UUID{}, kernel.NewUUID(), role.Client)
	require.Error(t, err)
}

func TestNewGetEmployeesRankingQuery(t *testing.T) {
	query, err := queries.NewGetEmployeesRankingQuery(kernel.NewUUID(), kernel.NewUUID(), role.Owner)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetEmployeesRankingQuery(kernel.NewUUID(), kernel.UUID{}, role.Owner)
	require.Error(t, err)
}

func TestNewValidateOwnerRestaurantQuery(t *testing.T) {
	query, err := queries.NewValidateOwnerRestaurantQuery(kernel.NewUUID(), kernel.NewUUID(), role.Owner)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	empty := queries.ValidateOwnerRestaurantQuery{}
	require.ErrorIs(t, empty.Validate(), queries.ErrValidateOwnerRestaurantQueryIsNotConstructed)
}
