package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResultResponse is the wire form of a domain.Result.
type ResultResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Authorization string         `json:"authorization,omitempty"`
	ErrorKind     string         `json:"error_kind,omitempty"`
	Test          bool           `json:"test"`
	RedirectURL   string         `json:"redirect_url,omitempty"`
	Params        map[string]any `json:"params,omitempty"`
}

func toResultResponse(r domain.Result) ResultResponse {
	return ResultResponse{
		Success:       r.Success,
		Message:       r.Message,
		Authorization: r.Authorization,
		ErrorKind:     string(r.ErrorKind),
		Test:          r.Test,
		Params:        r.Raw,
	}
}

// statusForResult keeps 2xx for approved operations only.
func statusForResult(r domain.Result) int {
	switch {
	case r.Success:
		return http.StatusOK
	case r.ErrorKind == domain.ErrorKindConfig:
		return http.StatusBadGateway
	default:
		return http.StatusPaymentRequired
	}
}

func respondWithResult(w http.ResponseWriter, r domain.Result, redirectURL string) {
	body := toResultResponse(r)
	body.RedirectURL = redirectURL
	respondWithJSON(w, statusForResult(r), body)
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if apiErr, ok := data.(*APIError); ok {
		response.Error = apiErr
	} else {
		response.Data = data
	}

	_ = json.NewEncoder(w).Encode(response)
}

func respondWithError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var (
		domainErr *domain.DomainError
		failure   *gateway.Failure
	)
	code := "INTERNAL_ERROR"
	message := err.Error()
	status := http.StatusInternalServerError

	switch {
	case errors.As(err, &domainErr):
		code = domainErr.Code
		message = domainErr.Error()

		switch domainErr.Code {
		case domain.ErrCodeMissingParameter, domain.ErrCodeInvalidArgument:
			status = http.StatusBadRequest
		case domain.ErrCodeMalformedResponse:
			status = http.StatusBadGateway
		}
	case errors.As(err, &failure):
		code = "PROVIDER_ERROR"
		status = http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		code = "TIMEOUT"
		status = http.StatusGatewayTimeout
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "code", code, "error", err)
	}

	respondWithJSON(w, status, &APIError{
		Code:    code,
		Message: message,
	})
}

// WriteError writes err as a JSON error response. Used by middleware outside this package.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	respondWithError(w, err, logger)
}
