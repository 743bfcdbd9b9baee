package order_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		literal string
		want    order.Status
	}{
		{"PENDING", order.Pending},
		{"IN_PREPARATION", order.InPreparation},
		{"READY", order.Ready},
		{"DELIVERED", order.Delivered},
		{"CANCELLED", order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			s, err := order.StatusFromString(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
			assert.Equal(t, tt.literal, s.String())
		})
	}

	t.Run("rejects unknown literal", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{
		order.Pending, order.InPreparation, order.Ready, order.Delivered, order.Cancelled,
	} {
		require.NoError(t, s.Validate())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_Assign(t *testing.T) {
	t.Run("pending can be assigned", func(t *testing.T) {
		next, err := order.Pending.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.InPreparation, next)
	})

	t.Run("every other status cannot", func(t *testing.T) {
		for _, s := range []order.Status{
			order.InPreparation, order.Ready, order.Delivered, order.Cancelled, order.Unknown,
		} {
			_, err := s.Assign()
			require.ErrorIs(t, err, errs.ErrInvalidOrderStatusTransition, s.String())
		}
	})
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("in preparation can become ready", func(t *testing.T) {
		next, err := order.InPreparation.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)
	})

	t.Run("every other status cannot", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Ready, order.Delivered, order.Cancelled, order.Unknown,
		} {
			_, err := s.MarkReady()
			require.ErrorIs(t, err, errs.ErrInvalidOrderStatusTransition, s.String())
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("ready can be delivered", func(t *testing.T) {
		next, err := order.Ready.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("every other status cannot", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.InPreparation, order.Delivered, order.Cancelled, order.Unknown,
		} {
			_, err := s.Deliver()
			require.ErrorIs(t, err, errs.ErrInvalidOrderStatusTransition, s.String())
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("pending can be cancelled", func(t *testing.T) {
		next, err := order.Pending.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("every other status cannot", func(t *testing.T) {
		for _, s := range []order.Status{
			order.InPreparation, order.Ready, order.Delivered, order.Cancelled, order.Unknown,
		} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrOrderCannotBeCancelled, s.String())
		}
	})
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, order.Pending.IsActive())
	assert.True(t, order.InPreparation.IsActive())
	assert.True(t, order.Ready.IsActive())
	assert.False(t, order.Delivered.IsActive())
	assert.False(t, order.Cancelled.IsActive())
	assert.False(t, order.Unknown.IsActive())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InPreparation.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
}
