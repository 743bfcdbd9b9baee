package kernel_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses valid decimal", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("25000.00")
		require.NoError(t, err)
		assert.Equal(t, "25000.00", m.String())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-1.00")
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("twelve")
		require.Error(t, err)
	})
}

func TestMoney_ExactArithmetic(t *testing.T) {
	t.Run("2 x 25000.00 is exactly 50000.00", func(t *testing.T) {
		price, err := kernel.NewMoneyFromString("25000.00")
		require.NoError(t, err)

		subtotal := price.MultiplyInt(2)
		expected, err := kernel.NewMoneyFromString("50000.00")
		require.NoError(t, err)
		assert.True(t, subtotal.IsEqual(expected))
		assert.Equal(t, "50000.00", subtotal.String())
	})

	t.Run("sum of subtotals has no rounding error", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("0.10")
		b, _ := kernel.NewMoneyFromString("0.20")

		total := kernel.ZeroMoney().Add(a).Add(b)
		expected, _ := kernel.NewMoneyFromString("0.30")
		assert.True(t, total.IsEqual(expected))
	})

	t.Run("equality ignores exponent representation", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.NewFromInt(50000))
		b, _ := kernel.NewMoneyFromString("50000.00")
		assert.True(t, a.IsEqual(b))
	})
}

func TestMoney_IsPositive(t *testing.T) {
	zero := kernel.ZeroMoney()
	assert.False(t, zero.IsPositive())

	m, err := kernel.NewMoneyFromString("0.01")
	require.NoError(t, err)
	assert.True(t, m.IsPositive())
}
