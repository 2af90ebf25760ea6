package domain

import (
	"errors"
	"fmt"
)

// DefaultCurrency is used by both providers when the caller omits one.
const DefaultCurrency = "USD"

// Money is an amount in minor units plus an optional ISO currency code
type Money struct {
	Amount   int64
	Currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errors.New("amount cannot be negative")
	}
	if currency != "" && !isCurrencyCode(currency) {
		return Money{}, fmt.Errorf("currency %q is not a 3-letter code", currency)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// CurrencyOr returns the money's currency, or fallback when none was given.
func (m Money) CurrencyOr(fallback string) string {
	if m.Currency == "" {
		return fallback
	}
	return m.Currency
}

// Decimal renders the amount in major units with two decimals, e.g. 100000 -> "1000.00".
func (m Money) Decimal() string {
	sign := ""
	amount := m.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
