package rest

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway/mundipagg"
	"github.com/go-chi/chi/v5"
)

type CardRequest struct {
	Number string `json:"number" validate:"required,numeric"`
	Name   string `json:"name"`
	Month  int    `json:"month" validate:"min=1,max=12"`
	Year   int    `json:"year" validate:"required"`
	CVV    string `json:"cvv" validate:"omitempty,numeric"`
	Brand  string `json:"brand"`
}

func (c CardRequest) toCard() domain.Card {
	return domain.Card{
		Number:            c.Number,
		Name:              c.Name,
		Month:             c.Month,
		Year:              c.Year,
		VerificationValue: c.CVV,
		Brand:             c.Brand,
	}
}

type AddressRequest struct {
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Zip          string `json:"zip"`
	Neighborhood string `json:"neighborhood"`
}

func (a *AddressRequest) toAddress() domain.Address {
	if a == nil {
		return domain.Address{}
	}
	return domain.Address(*a)
}

// InstrumentRequest holds either a card or a stored token returned by /cards.
type InstrumentRequest struct {
	Card  *CardRequest `json:"card"`
	Token string       `json:"token"`
}

func (i InstrumentRequest) toPaymentMethod() (domain.PaymentMethod, error) {
	switch {
	case i.Card != nil && i.Token != "":
		return domain.PaymentMethod{}, domain.NewInvalidArgumentError("provide either card or token, not both")
	case i.Card != nil:
		return domain.CardPayment(i.Card.toCard()), nil
	case i.Token != "":
		return domain.TokenPayment(i.Token), nil
	}
	return domain.PaymentMethod{}, domain.NewMissingParameterError("card")
}

type ChargeOptionsRequest struct {
	Email           string          `json:"email" validate:"omitempty,email"`
	CustomerID      string          `json:"customer_id"`
	HolderDocument  string          `json:"holder_document"`
	BillingAddress  *AddressRequest `json:"billing_address"`
	ShippingAddress *AddressRequest `json:"shipping_address"`
}

func (o ChargeOptionsRequest) toOptions() mundipagg.Options {
	return mundipagg.Options{
		Email:           o.Email,
		CustomerID:      o.CustomerID,
		HolderDocument:  o.HolderDocument,
		BillingAddress:  o.BillingAddress.toAddress(),
		ShippingAddress: o.ShippingAddress.toAddress(),
	}
}

type ChargeRequest struct {
	MoneyRequest
	InstrumentRequest
	ChargeOptionsRequest
}

type StoreCardRequest struct {
	Card CardRequest `json:"card"`
	ChargeOptionsRequest
}

type CustomerRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	h.handleCharge(w, r, h.charges.Purchase)
}

func (h *Handler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	h.handleCharge(w, r, h.charges.Authorize)
}

func (h *Handler) handleCharge(w http.ResponseWriter, r *http.Request, charge func(ctx context.Context, money domain.Money, pm domain.PaymentMethod, opts mundipagg.Options) (domain.Result, error)) {
	var req ChargeRequest
	if !h.decode(w, r, &req) {
		return
	}

	money, err := req.toMoney()
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	pm, err := req.toPaymentMethod()
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	result, err := charge(r.Context(), money, pm, req.toOptions())
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	respondWithResult(w, result, "")
}

func (h *Handler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	h.handleSettlement(w, r, h.charges.Capture)
}

func (h *Handler) HandleRefund(w http.ResponseWriter, r *http.Request) {
	h.handleSettlement(w, r, h.charges.Refund)
}

func (h *Handler) handleSettlement(w http.ResponseWriter, r *http.Request, settle func(ctx context.Context, money domain.Money, authorization string) (domain.Result, error)) {
	var req MoneyRequest
	if !h.decode(w, r, &req) {
		return
	}

	money, err := req.toMoney()
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	result, err := settle(r.Context(), money, chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	respondWithResult(w, result, "")
}

func (h *Handler) HandleVoid(w http.ResponseWriter, r *http.Request) {
	result, err := h.charges.Void(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	respondWithResult(w, result, "")
}

func (h *Handler) HandleStore(w http.ResponseWriter, r *http.Request) {
	var req StoreCardRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.charges.Store(r.Context(), req.Card.toCard(), req.toOptions())
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	respondWithResult(w, result, "")
}

func (h *Handler) HandleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.charges.CreateCustomer(r.Context(), mundipagg.Options{Name: req.Name})
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	respondWithResult(w, result, "")
}

type VerifyRequest struct {
	InstrumentRequest
	ChargeOptionsRequest
}

func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	pm, err := req.toPaymentMethod()
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	result, err := h.charges.Verify(r.Context(), pm, req.toOptions())
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	respondWithResult(w, result, "")
}
