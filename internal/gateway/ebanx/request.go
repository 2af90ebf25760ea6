package ebanx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
)

const (
	actionRequest = "request"
	actionQuery   = "query"
)

var paymentTypeCodes = map[string]string{
	"all":           "_all",
	"boleto":        "boleto",
	"bank_transfer": "_tef",
	"creditcard":    "_creditcard",
}

var jsonHeaders = map[string]string{
	"Content-Type": "application/json",
}

// SetupOptions describe the checkout a customer is redirected to.
type SetupOptions struct {
	OrderID  string
	Customer string
	Email    string
	Country  string
	// PaymentType optionally restricts the checkout to one method:
	// all, boleto, bank_transfer or creditcard.
	PaymentType string
}

type DetailsOptions struct {
	OrderID string
	Hash    string
}

func buildSetupRequest(cfg Config, money domain.Money, opts SetupOptions) (gateway.Request, error) {
	if err := requireFields(
		"order_id", opts.OrderID,
		"customer", opts.Customer,
		"email", opts.Email,
		"country", opts.Country,
	); err != nil {
		return gateway.Request{}, err
	}

	post := addInvoice(gateway.Payload{}, money, opts)
	post = addCustomer(post, opts)
	post, err := addPaymentType(post, opts.PaymentType)
	if err != nil {
		return gateway.Request{}, err
	}
	post = addCredentials(post, cfg)

	return gateway.NewRequest(http.MethodPost, endpoint(cfg, actionRequest), post, jsonHeaders)
}

func buildDetailsRequest(cfg Config, opts DetailsOptions) (gateway.Request, error) {
	if err := requireFields("order_id", opts.OrderID, "hash", opts.Hash); err != nil {
		return gateway.Request{}, err
	}

	query := url.Values{}
	query.Set("merchant_payment_code", opts.OrderID)
	query.Set("hash", opts.Hash)
	query.Set("integration_key", cfg.IntegrationKey)

	// Encode sorts by key: hash, integration_key, merchant_payment_code.
	return gateway.NewRequest(http.MethodGet, endpoint(cfg, actionQuery)+"?"+query.Encode(), nil, nil)
}

func redirectURL(cfg Config, hash string) string {
	return strings.TrimSuffix(cfg.URL(), "/ws") + "/checkout?hash=" + hash
}

func endpoint(cfg Config, action string) string {
	return cfg.URL() + "/" + action
}

func addInvoice(post gateway.Payload, money domain.Money, opts SetupOptions) gateway.Payload {
	return post.
		With("amount", money.Decimal()).
		With("currency_code", money.CurrencyOr(domain.DefaultCurrency)).
		With("merchant_payment_code", opts.OrderID)
}

func addCustomer(post gateway.Payload, opts SetupOptions) gateway.Payload {
	return post.
		With("name", opts.Customer).
		With("email", opts.Email).
		With("country", strings.ToLower(opts.Country))
}

func addPaymentType(post gateway.Payload, paymentType string) (gateway.Payload, error) {
	if strings.TrimSpace(paymentType) == "" {
		return post, nil
	}
	code, ok := paymentTypeCodes[paymentType]
	if !ok {
		return nil, domain.NewInvalidArgumentError("Invalid payment type: %s", paymentType)
	}
	return post.With("payment_type_code", code), nil
}

func addCredentials(post gateway.Payload, cfg Config) gateway.Payload {
	return post.With("integration_key", cfg.IntegrationKey)
}

// requireFields takes name/value pairs and reports the first blank value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return domain.NewMissingParameterError(pairs[i])
		}
	}
	return nil
}
