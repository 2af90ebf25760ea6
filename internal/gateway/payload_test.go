package gateway_test

import (
	"testing"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
	"github.com/stretchr/testify/assert"
)

func TestPayload_DoesNotMutateReceiver(t *testing.T) {
	base := gateway.Payload{"amount": 100}

	withCurrency := base.With("currency", "USD")
	nested := withCurrency.WithIn([]string{"payment", "credit_card", "capture"}, false)
	without := nested.Without("amount")

	assert.Equal(t, gateway.Payload{"amount": 100}, base)
	assert.Equal(t, gateway.Payload{"amount": 100, "currency": "USD"}, withCurrency)
	assert.Equal(t, false, nested.Object("payment").Object("credit_card")["capture"])
	assert.NotContains(t, without, "amount")
	assert.Contains(t, nested, "amount")
}

func TestPayload_WithInCopiesNestedObjects(t *testing.T) {
	base := gateway.Payload{"customer": gateway.Payload{"email": "a@b.com"}}

	updated := base.WithIn([]string{"customer", "name"}, "Longbob")

	assert.Equal(t, gateway.Payload{"email": "a@b.com"}, base.Object("customer"))
	assert.Equal(t, gateway.Payload{"email": "a@b.com", "name": "Longbob"}, updated.Object("customer"))
}

func TestPayload_Merge(t *testing.T) {
	var empty gateway.Payload

	merged := empty.Merge(gateway.Payload{"number": "4000"}).Merge(gateway.Payload{"cvv": "123"})

	assert.Equal(t, gateway.Payload{"number": "4000", "cvv": "123"}, merged)
	assert.Nil(t, empty)
}

func TestPayload_ObjectAcceptsDecodedMaps(t *testing.T) {
	p := gateway.Payload{"card": map[string]any{"number": "4000"}}

	assert.Equal(t, gateway.Payload{"number": "4000"}, p.Object("card"))
	assert.Nil(t, p.Object("missing"))
}
