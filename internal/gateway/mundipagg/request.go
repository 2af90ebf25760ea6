package mundipagg

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
)

const (
	actionSale     = "sale"
	actionAuthOnly = "authonly"
	actionCapture  = "capture"
	actionRefund   = "refund"
	actionVoid     = "void"
	actionStore    = "store"
	actionCustomer = "customer"
)

const (
	methodCreditCard = "credit_card"
	methodVoucher    = "voucher"
)

// Options carry the per-operation data that is not money or instrument.
type Options struct {
	Email          string
	Name           string
	CustomerID     string
	HolderDocument string
	// BillingAddress falls back to Address when empty.
	BillingAddress  domain.Address
	Address         domain.Address
	ShippingAddress domain.Address
}

func (o Options) billingAddress() domain.Address {
	if !o.BillingAddress.IsZero() {
		return o.BillingAddress
	}
	return o.Address
}

func headers(apiKey string) map[string]string {
	return map[string]string{
		"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":")),
		"Content-Type":  "application/json",
		"Accept":        "application/json",
	}
}

func urlFor(base, action, id string) string {
	switch action {
	case actionStore:
		return base + "customers/" + id + "/cards"
	case actionCustomer:
		return base + "customers"
	case actionCapture:
		return base + "charges/" + id + "/capture/"
	case actionRefund, actionVoid:
		return base + "charges/" + id + "/"
	}
	return base + "charges/"
}

func methodFor(action string) string {
	switch action {
	case actionRefund, actionVoid:
		return http.MethodDelete
	}
	return http.MethodPost
}

func newRequest(cfg Config, action, id string, post gateway.Payload) (gateway.Request, error) {
	var payload any
	if post != nil {
		payload = post
	}
	return gateway.NewRequest(methodFor(action), urlFor(cfg.URL(), action, id), payload, headers(cfg.APIKey))
}

func buildChargeRequest(cfg Config, action string, money domain.Money, pm domain.PaymentMethod, opts Options) (gateway.Request, error) {
	post := addInvoice(gateway.Payload{}, money)
	if pm.Kind() != domain.KindStoredToken {
		post = addCustomerData(post, opts)
	}
	post = addShippingAddress(post, opts)
	post, err := addPayment(post, pm, opts)
	if err != nil {
		return gateway.Request{}, err
	}
	if action == actionAuthOnly {
		post = addCaptureFlag(post, pm)
	}
	return newRequest(cfg, action, "", post)
}

func buildCaptureRequest(cfg Config, money domain.Money, authorization string) (gateway.Request, error) {
	if err := requireAuthorization(authorization); err != nil {
		return gateway.Request{}, err
	}
	post := addInvoice(gateway.Payload{"code": authorization}, money)
	return newRequest(cfg, actionCapture, authorization, post)
}

func buildRefundRequest(cfg Config, money domain.Money, authorization string) (gateway.Request, error) {
	if err := requireAuthorization(authorization); err != nil {
		return gateway.Request{}, err
	}
	return newRequest(cfg, actionRefund, authorization, addInvoice(gateway.Payload{}, money))
}

func buildVoidRequest(cfg Config, authorization string) (gateway.Request, error) {
	if err := requireAuthorization(authorization); err != nil {
		return gateway.Request{}, err
	}
	return newRequest(cfg, actionVoid, authorization, nil)
}

func buildCustomerRequest(cfg Config, opts Options) (gateway.Request, error) {
	return newRequest(cfg, actionCustomer, "", gateway.Payload{"name": opts.Name})
}

// buildStoreRequest sends the card fields at the top level of the body with
// no payment wrapper. Only the store action is shaped this way.
func buildStoreRequest(cfg Config, card domain.Card, opts Options) (gateway.Request, error) {
	if strings.TrimSpace(opts.CustomerID) == "" {
		return gateway.Request{}, domain.NewMissingParameterError("customer_id")
	}

	post, err := addPayment(gateway.Payload{}, domain.CardPayment(card), opts)
	if err != nil {
		return gateway.Request{}, err
	}
	return newRequest(cfg, actionStore, opts.CustomerID, flattenCard(post))
}

func flattenCard(post gateway.Payload) gateway.Payload {
	payment := post.Object("payment")
	sub := payment.Object(methodCreditCard)
	if sub == nil {
		sub = payment.Object(methodVoucher)
	}
	return post.Merge(sub.Object("card")).Without("payment")
}

func addInvoice(post gateway.Payload, money domain.Money) gateway.Payload {
	return post.
		With("amount", money.Amount).
		With("currency", money.CurrencyOr(domain.DefaultCurrency))
}

func addCustomerData(post gateway.Payload, opts Options) gateway.Payload {
	return post.With("customer", gateway.Payload{"email": opts.Email})
}

func addShippingAddress(post gateway.Payload, opts Options) gateway.Payload {
	if opts.ShippingAddress.IsZero() {
		return post
	}
	return post.With("address", addressFields(opts.ShippingAddress))
}

func addPayment(post gateway.Payload, pm domain.PaymentMethod, opts Options) (gateway.Payload, error) {
	if post.Object("customer") != nil {
		post = post.WithIn([]string{"customer", "name"}, pm.HolderName())
	}

	if token, ok := pm.Token(); ok {
		auth, err := domain.ParseCompositeAuthorization(token)
		if err != nil {
			return nil, err
		}
		return post.
			With("customer_id", auth.CustomerID).
			With("payment", gateway.Payload{
				"payment_method": methodCreditCard,
				methodCreditCard: gateway.Payload{"card_id": auth.CardID},
			}), nil
	}

	card, _ := pm.Card()
	if card.IsVoucher() {
		return post.With("payment", gateway.Payload{
			"payment_method": methodVoucher,
			methodVoucher: gateway.Payload{
				"card": cardFields(card, opts).With("holder_document", opts.HolderDocument),
			},
		}), nil
	}

	return post.With("payment", gateway.Payload{
		"payment_method": methodCreditCard,
		methodCreditCard: gateway.Payload{"card": cardFields(card, opts)},
	}), nil
}

func addCaptureFlag(post gateway.Payload, pm domain.PaymentMethod) gateway.Payload {
	if pm.Kind() == domain.KindVoucher {
		return post.WithIn([]string{"payment", methodVoucher, "capture"}, false)
	}
	return post.WithIn([]string{"payment", methodCreditCard, "capture"}, false)
}

func cardFields(card domain.Card, opts Options) gateway.Payload {
	fields := gateway.Payload{
		"number":      card.Number,
		"holder_name": card.Name,
		"exp_month":   card.Month,
		"exp_year":    card.Year,
		"cvv":         card.VerificationValue,
	}
	if billing := opts.billingAddress(); !billing.IsZero() {
		fields = fields.With("billing_address", addressFields(billing).With("neighborhood", billing.Neighborhood))
	}
	return fields
}

// addressFields uses the provider's field names, "compliment" included.
func addressFields(a domain.Address) gateway.Payload {
	fields := gateway.Payload{}
	if a.Address1 != "" {
		street, number := a.SplitStreet()
		fields = fields.With("street", street).With("number", number)
	}
	optional := []struct{ key, value string }{
		{"compliment", a.Address2},
		{"city", a.City},
		{"state", a.State},
		{"country", a.Country},
		{"zip_code", a.Zip},
	}
	for _, f := range optional {
		if f.value != "" {
			fields = fields.With(f.key, f.value)
		}
	}
	return fields
}

func requireAuthorization(authorization string) error {
	if strings.TrimSpace(authorization) == "" {
		return domain.NewMissingParameterError("authorization")
	}
	return nil
}
