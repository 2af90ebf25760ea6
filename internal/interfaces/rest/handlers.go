// Package rest exposes both provider gateways as a small JSON API.
package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway/ebanx"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway/mundipagg"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator"
)

type CheckoutGateway interface {
	SetupPurchase(ctx context.Context, money domain.Money, opts ebanx.SetupOptions) (domain.Result, error)
	DetailsFor(ctx context.Context, opts ebanx.DetailsOptions) (domain.Result, error)
	RedirectURLFor(hash string) string
}

type ChargeGateway interface {
	Purchase(ctx context.Context, money domain.Money, pm domain.PaymentMethod, opts mundipagg.Options) (domain.Result, error)
	Authorize(ctx context.Context, money domain.Money, pm domain.PaymentMethod, opts mundipagg.Options) (domain.Result, error)
	Capture(ctx context.Context, money domain.Money, authorization string) (domain.Result, error)
	Refund(ctx context.Context, money domain.Money, authorization string) (domain.Result, error)
	Void(ctx context.Context, authorization string) (domain.Result, error)
	Store(ctx context.Context, card domain.Card, opts mundipagg.Options) (domain.Result, error)
	CreateCustomer(ctx context.Context, opts mundipagg.Options) (domain.Result, error)
	Verify(ctx context.Context, pm domain.PaymentMethod, opts mundipagg.Options) (domain.Result, error)
}

type Handler struct {
	checkout CheckoutGateway
	charges  ChargeGateway
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(checkout CheckoutGateway, charges ChargeGateway, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		checkout: checkout,
		charges:  charges,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/v1/ebanx", func(r chi.Router) {
		r.Post("/checkouts", h.HandleSetupCheckout)
		r.Get("/checkouts/{hash}", h.HandleCheckoutDetails)
	})

	r.Route("/v1/mundipagg", func(r chi.Router) {
		r.Post("/purchases", h.HandlePurchase)
		r.Post("/authorizations", h.HandleAuthorize)
		r.Post("/charges/{id}/capture", h.HandleCapture)
		r.Post("/charges/{id}/refund", h.HandleRefund)
		r.Delete("/charges/{id}", h.HandleVoid)
		r.Post("/cards", h.HandleStore)
		r.Post("/customers", h.HandleCreateCustomer)
		r.Post("/verifications", h.HandleVerify)
	})
}

// decode reads and validates a JSON body, writing the error response itself.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithJSON(w, http.StatusBadRequest, &APIError{
			Code:    "INVALID_JSON",
			Message: err.Error(),
		})
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		respondWithJSON(w, http.StatusBadRequest, &APIError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		})
		return false
	}
	return true
}

// MoneyRequest is embedded by every request carrying an amount.
type MoneyRequest struct {
	Amount   int64  `json:"amount" validate:"min=0"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

func (m MoneyRequest) toMoney() (domain.Money, error) {
	money, err := domain.NewMoney(m.Amount, m.Currency)
	if err != nil {
		return domain.Money{}, domain.NewInvalidArgumentError("%s", err.Error())
	}
	return money, nil
}
