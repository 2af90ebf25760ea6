package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verifyCalls struct {
	voids         int
	authorization string
}

func (c *verifyCalls) void(result domain.Result, err error) func(context.Context, string) (domain.Result, error) {
	return func(_ context.Context, authorization string) (domain.Result, error) {
		c.voids++
		c.authorization = authorization
		return result, err
	}
}

func authorizeWith(result domain.Result, err error) func(context.Context) (domain.Result, error) {
	return func(context.Context) (domain.Result, error) {
		return result, err
	}
}

func TestVerify(t *testing.T) {
	approved := domain.Result{Success: true, Message: "Success", Authorization: "ch_1"}

	t.Run("voids a successful authorization and returns it", func(t *testing.T) {
		calls := &verifyCalls{}

		result, err := gateway.Verify(context.Background(), nil,
			authorizeWith(approved, nil),
			calls.void(domain.Result{Success: true}, nil),
		)

		require.NoError(t, err)
		assert.Equal(t, approved, result)
		assert.Equal(t, 1, calls.voids)
		assert.Equal(t, "ch_1", calls.authorization)
	})

	t.Run("void decline does not change the result", func(t *testing.T) {
		calls := &verifyCalls{}

		result, err := gateway.Verify(context.Background(), nil,
			authorizeWith(approved, nil),
			calls.void(domain.Result{Success: false, ErrorKind: domain.ErrorKindProcessing}, nil),
		)

		require.NoError(t, err)
		assert.Equal(t, approved, result)
		assert.Equal(t, 1, calls.voids)
	})

	t.Run("void error does not change the result", func(t *testing.T) {
		calls := &verifyCalls{}

		result, err := gateway.Verify(context.Background(), nil,
			authorizeWith(approved, nil),
			calls.void(domain.Result{}, errors.New("connection reset")),
		)

		require.NoError(t, err)
		assert.Equal(t, approved, result)
	})

	t.Run("declined authorization skips the void", func(t *testing.T) {
		calls := &verifyCalls{}
		declined := domain.Result{Success: false, Message: "Not authorized", ErrorKind: domain.ErrorKindProcessing}

		result, err := gateway.Verify(context.Background(), nil,
			authorizeWith(declined, nil),
			calls.void(domain.Result{Success: true}, nil),
		)

		require.NoError(t, err)
		assert.Equal(t, declined, result)
		assert.Zero(t, calls.voids)
	})

	t.Run("authorize error skips the void", func(t *testing.T) {
		calls := &verifyCalls{}
		authErr := errors.New("timeout")

		_, err := gateway.Verify(context.Background(), nil,
			authorizeWith(domain.Result{}, authErr),
			calls.void(domain.Result{Success: true}, nil),
		)

		assert.ErrorIs(t, err, authErr)
		assert.Zero(t, calls.voids)
	})
}
