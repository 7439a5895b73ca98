package kernel_test

import (
	"testing"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("rounds to cents", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("3.456"))
		require.NoError(t, err)
		assert.Equal(t, "3.46", m.String())
	})

	t.Run("negative is out of range", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoneyFromString(t *testing.T) {
	m, err := kernel.MoneyFromString("12500")
	require.NoError(t, err)
	assert.Equal(t, "12500.00", m.String())

	_, err = kernel.MoneyFromString("12,5")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.MoneyFromString("2.50")
	tip, _ := kernel.MoneyFromString("1")

	assert.Equal(t, "7.50", price.Mul(3).String())
	assert.True(t, price.Mul(3).Add(tip).IsEqual(mustMoney(t, "8.50")))
	assert.True(t, kernel.Zero.IsEqual(price.Mul(0)))
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}
