package domain_test

import (
	"errors"
	"testing"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeAuthorization_RoundTrip(t *testing.T) {
	auth, err := domain.NewCompositeAuthorization("cus_123", "card_456")
	require.NoError(t, err)

	token := auth.Encode()
	assert.Equal(t, "cus_123|card_456", token)

	parsed, err := domain.ParseCompositeAuthorization(token)
	require.NoError(t, err)
	assert.Equal(t, auth, parsed)
}

func TestNewCompositeAuthorization_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		cardID     string
		want       error
		field      string
	}{
		{"empty customer", "", "card_1", domain.ErrMissingParameter, "customer_id"},
		{"empty card", "cus_1", "", domain.ErrMissingParameter, "card_id"},
		{"separator in customer", "cus|1", "card_1", domain.ErrInvalidArgument, "customer_id"},
		{"separator in card", "cus_1", "card|1", domain.ErrInvalidArgument, "card_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCompositeAuthorization(tt.customerID, tt.cardID)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseCompositeAuthorization_Invalid(t *testing.T) {
	for _, token := range []string{"", "cus_1", "cus_1|", "|card_1", "a|b|c"} {
		t.Run(token, func(t *testing.T) {
			_, err := domain.ParseCompositeAuthorization(token)

			assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidArgument))
		})
	}
}
