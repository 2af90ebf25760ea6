package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	t.Run("missing parameter names the field", func(t *testing.T) {
		err := domain.NewMissingParameterError("order_id")

		assert.EqualError(t, err, "Missing required parameter: order_id")
		assert.ErrorIs(t, err, domain.ErrMissingParameter)
		assert.NotErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("building request: %w", domain.NewInvalidArgumentError("Invalid payment type: %s", "pix"))

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidArgument))
	})

	t.Run("malformed response keeps the cause", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := domain.NewMalformedResponseError(cause)

		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, domain.ErrMalformedResponse)
		assert.Contains(t, err.Error(), "unexpected end of JSON input")
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, domain.IsErrorCode(errors.New("boom"), domain.ErrCodeInvalidArgument))
	})
}
