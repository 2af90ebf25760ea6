package ebanx_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway/ebanx"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const successfulSetupResponse = `{
  "payment": {
    "hash": "52a5dbd4e5b0e17aa8c4b8d1c5cfd5c4c5a7d2b8a9a1cf6d",
    "pin": "670232584",
    "merchant_payment_code": "10",
    "order_number": null,
    "status": "OP",
    "status_date": null,
    "open_date": "2014-01-22 14:40:04",
    "confirm_date": null,
    "transfer_date": null,
    "amount_br": "1000.00",
    "amount_ext": "1000.00",
    "amount_iof": "0.00",
    "currency_rate": "1.0000",
    "currency_ext": "BRL",
    "due_date": "2014-01-25",
    "instalments": "1",
    "payment_type_code": "_all",
    "pre_approved": false,
    "capture_available": null
  },
  "status": "SUCCESS"
}`

const failedSetupResponse = `{"status":"ERROR","status_code":"BP-R-1","status_message":"Parameter integration_key not informed"}`

func newGateway(t *testing.T, test bool) (*ebanx.Gateway, *mocks.MockTransport) {
	t.Helper()
	transport := mocks.NewMockTransport(t)
	g, err := ebanx.New(ebanx.Config{IntegrationKey: "KEY", Test: test}, transport, nil, nil)
	require.NoError(t, err)
	return g, transport
}

func setupOptions() ebanx.SetupOptions {
	return ebanx.SetupOptions{
		OrderID:     "10",
		Customer:    "Jose da Silva",
		Email:       "jose@example.com",
		Country:     "BR",
		PaymentType: "creditcard",
	}
}

func ok(body string) gateway.Response {
	return gateway.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

func TestNew_RequiresIntegrationKey(t *testing.T) {
	_, err := ebanx.New(ebanx.Config{Test: true}, mocks.NewMockTransport(t), nil, nil)

	require.ErrorIs(t, err, domain.ErrMissingParameter)
	assert.Contains(t, err.Error(), "integration_key")
}

func TestSetupPurchase_Success(t *testing.T) {
	g, transport := newGateway(t, true)

	transport.EXPECT().
		Post(mock.Anything, "https://sandbox.ebanx.com/ws/request", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, body []byte, headers map[string]string) {
			assert.JSONEq(t, `{
				"amount": "1000.00",
				"currency_code": "USD",
				"merchant_payment_code": "10",
				"name": "Jose da Silva",
				"email": "jose@example.com",
				"country": "br",
				"payment_type_code": "_creditcard",
				"integration_key": "KEY"
			}`, string(body))
			assert.Equal(t, "application/json", headers["Content-Type"])
		}).
		Return(ok(successfulSetupResponse), nil).
		Once()

	result, err := g.SetupPurchase(context.Background(), domain.Money{Amount: 100000}, setupOptions())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Success", result.Message)
	assert.Equal(t, "52a5dbd4e5b0e17aa8c4b8d1c5cfd5c4c5a7d2b8a9a1cf6d", result.Authorization)
	assert.Equal(t, domain.ErrorKindNone, result.ErrorKind)
	assert.True(t, result.Test)
	assert.Nil(t, result.AVS)
	assert.Nil(t, result.CVV)
}

func TestSetupPurchase_Failure(t *testing.T) {
	g, transport := newGateway(t, true)

	transport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ok(failedSetupResponse), nil)

	result, err := g.SetupPurchase(context.Background(), domain.Money{Amount: 100000}, setupOptions())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Parameter integration_key not informed", result.Message)
	assert.Empty(t, result.Authorization)
	assert.Equal(t, domain.ErrorKindProcessing, result.ErrorKind)
}

func TestSetupPurchase_OmitsPaymentTypeWhenBlank(t *testing.T) {
	g, transport := newGateway(t, false)
	opts := setupOptions()
	opts.PaymentType = ""

	transport.EXPECT().
		Post(mock.Anything, "https://api.ebanx.com/ws/request", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, body []byte, _ map[string]string) {
			assert.NotContains(t, string(body), "payment_type_code")
		}).
		Return(ok(successfulSetupResponse), nil)

	result, err := g.SetupPurchase(context.Background(), domain.Money{Amount: 500, Currency: "BRL"}, opts)

	require.NoError(t, err)
	assert.False(t, result.Test)
}

func TestSetupPurchase_InvalidPaymentType(t *testing.T) {
	g, _ := newGateway(t, true)
	opts := setupOptions()
	opts.PaymentType = "pix"

	_, err := g.SetupPurchase(context.Background(), domain.Money{Amount: 100000}, opts)

	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.EqualError(t, err, "Invalid payment type: pix")
}

func TestSetupPurchase_MissingParameters(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*ebanx.SetupOptions)
	}{
		{"order_id", func(o *ebanx.SetupOptions) { o.OrderID = "" }},
		{"customer", func(o *ebanx.SetupOptions) { o.Customer = "" }},
		{"email", func(o *ebanx.SetupOptions) { o.Email = " " }},
		{"country", func(o *ebanx.SetupOptions) { o.Country = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			g, _ := newGateway(t, true)
			opts := setupOptions()
			tt.mutate(&opts)

			_, err := g.SetupPurchase(context.Background(), domain.Money{Amount: 100000}, opts)

			require.ErrorIs(t, err, domain.ErrMissingParameter)
			assert.EqualError(t, err, "Missing required parameter: "+tt.field)
		})
	}
}

func TestSetupPurchase_UnexpectedHTTPStatus(t *testing.T) {
	g, transport := newGateway(t, true)

	transport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(gateway.Response{StatusCode: http.StatusInternalServerError, Body: []byte("oops")}, nil)

	_, err := g.SetupPurchase(context.Background(), domain.Money{Amount: 100000}, setupOptions())

	var failure *gateway.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusInternalServerError, failure.StatusCode)
}

func TestDetailsFor(t *testing.T) {
	g, transport := newGateway(t, true)

	transport.EXPECT().
		Get(mock.Anything, "https://sandbox.ebanx.com/ws/query?hash=H&integration_key=KEY&merchant_payment_code=10", mock.Anything).
		Return(ok(successfulSetupResponse), nil).
		Once()

	result, err := g.DetailsFor(context.Background(), ebanx.DetailsOptions{OrderID: "10", Hash: "H"})

	require.NoError(t, err)
	assert.True(t, result.Success)

	details := ebanx.DetailsOf(result)
	assert.Equal(t, "670232584", details.Pin())
	assert.Equal(t, "10", details.OrderID())
	assert.Empty(t, details.OrderNumber())
	assert.Equal(t, "1000.00", details.AmountBR())
	assert.Equal(t, "BRL", details.CurrencyExt())
	assert.Equal(t, "2014-01-25", details.DueDate())
	assert.Equal(t, "1", details.Instalments())
	assert.Equal(t, "_all", details.PaymentTypeCode())
	assert.True(t, details.Requested())
	assert.False(t, details.Confirmed())
	assert.False(t, details.PreApproved())
	assert.False(t, details.CaptureAvailable())
}

func TestDetailsFor_MissingHash(t *testing.T) {
	g, _ := newGateway(t, true)

	_, err := g.DetailsFor(context.Background(), ebanx.DetailsOptions{OrderID: "10"})

	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestRedirectURLFor(t *testing.T) {
	sandbox, _ := newGateway(t, true)
	live, _ := newGateway(t, false)

	assert.Equal(t, "https://sandbox.ebanx.com/checkout?hash=abc123", sandbox.RedirectURLFor("abc123"))
	assert.Equal(t, "https://api.ebanx.com/checkout?hash=abc123", live.RedirectURLFor("abc123"))
}

func TestDetailsOf_EmptyResult(t *testing.T) {
	details := ebanx.DetailsOf(domain.Result{})

	assert.Empty(t, details.Hash())
	assert.False(t, details.Pending())
}

func TestDetailsOf_NumericFields(t *testing.T) {
	g, transport := newGateway(t, true)

	transport.EXPECT().
		Get(mock.Anything, mock.Anything, mock.Anything).
		Return(ok(`{"status":"SUCCESS","payment":{"hash":"H","merchant_payment_code":10,"order_number":12345678,"amount_br":1500000,"instalments":12}}`), nil)

	result, err := g.DetailsFor(context.Background(), ebanx.DetailsOptions{OrderID: "10", Hash: "H"})
	require.NoError(t, err)

	details := ebanx.DetailsOf(result)
	assert.Equal(t, "10", details.OrderID())
	assert.Equal(t, "12345678", details.OrderNumber())
	assert.Equal(t, "1500000", details.AmountBR())
	assert.Equal(t, "12", details.Instalments())
}
