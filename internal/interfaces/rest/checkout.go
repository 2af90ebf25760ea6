package rest

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway/ebanx"
	"github.com/go-chi/chi/v5"
)

type SetupCheckoutRequest struct {
	MoneyRequest
	OrderID     string `json:"order_id"`
	Customer    string `json:"customer"`
	Email       string `json:"email" validate:"omitempty,email"`
	Country     string `json:"country"`
	PaymentType string `json:"payment_type"`
}

func (h *Handler) HandleSetupCheckout(w http.ResponseWriter, r *http.Request) {
	var req SetupCheckoutRequest
	if !h.decode(w, r, &req) {
		return
	}

	money, err := req.toMoney()
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	result, err := h.checkout.SetupPurchase(r.Context(), money, ebanx.SetupOptions{
		OrderID:     req.OrderID,
		Customer:    req.Customer,
		Email:       req.Email,
		Country:     req.Country,
		PaymentType: req.PaymentType,
	})
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	redirect := ""
	if result.Success {
		redirect = h.checkout.RedirectURLFor(result.Authorization)
	}
	respondWithResult(w, result, redirect)
}

// HandleCheckoutDetails expects the merchant order id as the order_id query parameter.
func (h *Handler) HandleCheckoutDetails(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	result, err := h.checkout.DetailsFor(r.Context(), ebanx.DetailsOptions{
		OrderID: r.URL.Query().Get("order_id"),
		Hash:    hash,
	})
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	redirect := ""
	if result.Success {
		redirect = h.checkout.RedirectURLFor(hash)
	}
	respondWithResult(w, result, redirect)
}
