package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount plus an uppercase ISO-style currency code.
// All arithmetic and comparisons require matching currencies; there is no
// implicit conversion anywhere in the system.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney validates and normalizes the given amount and currency.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, NewInvalidAmountError("Amount cannot be negative")
	}
	if strings.TrimSpace(currency) == "" {
		return Money{}, NewInvalidCurrencyError("Currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: strings.ToUpper(strings.TrimSpace(currency)),
	}, nil
}

// NewMoneyFromFloat is a convenience for request payloads that carry plain
// JSON numbers.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) AmountFloat() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) Currency() string {
	return m.currency
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) checkCurrency(operation string, other Money) error {
	if m.currency != other.currency {
		return NewCurrencyMismatchError(operation, m.currency, other.currency)
	}
	return nil
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency("add", other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.checkCurrency("compare", other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

func (m Money) LessThan(other Money) (bool, error) {
	if err := m.checkCurrency("compare", other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

func (m Money) GreaterOrEqual(other Money) (bool, error) {
	if err := m.checkCurrency("compare", other); err != nil {
		return false, err
	}
	return m.amount.GreaterThanOrEqual(other.amount), nil
}

func (m Money) LessOrEqual(other Money) (bool, error) {
	if err := m.checkCurrency("compare", other); err != nil {
		return false, err
	}
	return m.amount.LessThanOrEqual(other.amount), nil
}

// Equals is structural: same currency and same numeric amount.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}
