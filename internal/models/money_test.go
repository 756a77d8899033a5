package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid amount and currency", func(t *testing.T) {
		money, err := NewMoney(decimal.NewFromInt(100), "USD")
		require.NoError(t, err)
		assert.Equal(t, "USD", money.Currency())
		assert.True(t, money.Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		money, err := NewMoney(decimal.Zero, "USD")
		require.NoError(t, err)
		assert.False(t, money.IsPositive())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(-1), "USD")
		require.Error(t, err)
		assert.Equal(t, ErrCodeInvalidAmount, ErrorCode(err))
	})

	t.Run("empty currency rejected", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(10), "   ")
		require.Error(t, err)
		assert.Equal(t, ErrCodeInvalidCurrency, ErrorCode(err))
	})

	t.Run("currency is normalized to upper case", func(t *testing.T) {
		money, err := NewMoney(decimal.NewFromInt(10), " usd ")
		require.NoError(t, err)
		assert.Equal(t, "USD", money.Currency())
	})
}

func TestMoneyComparisons(t *testing.T) {
	lower, err := NewMoneyFromFloat(1000, "USD")
	require.NoError(t, err)
	higher, err := NewMoneyFromFloat(1200, "USD")
	require.NoError(t, err)

	greater, err := higher.GreaterThan(lower)
	require.NoError(t, err)
	assert.True(t, greater)

	greater, err = lower.GreaterThan(higher)
	require.NoError(t, err)
	assert.False(t, greater)

	// equal amounts are not greater
	sameAsLower, err := NewMoneyFromFloat(1000, "USD")
	require.NoError(t, err)
	greater, err = sameAsLower.GreaterThan(lower)
	require.NoError(t, err)
	assert.False(t, greater)

	less, err := lower.LessThan(higher)
	require.NoError(t, err)
	assert.True(t, less)

	gte, err := sameAsLower.GreaterOrEqual(lower)
	require.NoError(t, err)
	assert.True(t, gte)

	lte, err := sameAsLower.LessOrEqual(lower)
	require.NoError(t, err)
	assert.True(t, lte)
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	usd, err := NewMoneyFromFloat(1000, "USD")
	require.NoError(t, err)
	eur, err := NewMoneyFromFloat(1000, "EUR")
	require.NoError(t, err)

	_, err = usd.GreaterThan(eur)
	require.Error(t, err)
	assert.Equal(t, ErrCodeCurrencyMismatch, ErrorCode(err))

	_, err = usd.Add(eur)
	require.Error(t, err)
	assert.Equal(t, ErrCodeCurrencyMismatch, ErrorCode(err))
	assert.Contains(t, err.Error(), "USD")
	assert.Contains(t, err.Error(), "EUR")
}

func TestMoneyAdd(t *testing.T) {
	a, err := NewMoneyFromFloat(10.50, "USD")
	require.NoError(t, err)
	b, err := NewMoneyFromFloat(4.25, "USD")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "14.75 USD", sum.String())
}

func TestMoneyEquals(t *testing.T) {
	a, err := NewMoneyFromFloat(1200, "USD")
	require.NoError(t, err)
	b, err := NewMoneyFromFloat(1200, "USD")
	require.NoError(t, err)
	c, err := NewMoneyFromFloat(1200, "EUR")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestMoneyString(t *testing.T) {
	money, err := NewMoneyFromFloat(1200, "USD")
	require.NoError(t, err)
	assert.Equal(t, "1200.00 USD", money.String())

	money, err = NewMoneyFromFloat(1000.5, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "1000.50 EUR", money.String())
}
