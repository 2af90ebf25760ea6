package domain_test

import (
	"testing"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts amount with currency", func(t *testing.T) {
		money, err := domain.NewMoney(5000, "BRL")

		require.NoError(t, err)
		assert.Equal(t, int64(5000), money.Amount)
		assert.Equal(t, "BRL", money.Currency)
	})

	t.Run("accepts missing currency", func(t *testing.T) {
		money, err := domain.NewMoney(0, "")

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCurrency, money.CurrencyOr(domain.DefaultCurrency))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := domain.NewMoney(-1, "USD")

		assert.EqualError(t, err, "amount cannot be negative")
	})

	t.Run("rejects malformed currency", func(t *testing.T) {
		_, err := domain.NewMoney(100, "US1")

		assert.Error(t, err)
	})
}

func TestMoney_Decimal(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{100000, "1000.00"},
		{100, "1.00"},
		{5, "0.05"},
		{0, "0.00"},
		{123456, "1234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Money{Amount: tt.amount}.Decimal())
		})
	}
}
