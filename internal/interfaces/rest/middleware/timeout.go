package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/interfaces/rest"
)

var timeoutBody = func() string {
	body, _ := json.Marshal(rest.APIResponse{
		Error: &rest.APIError{Code: "TIMEOUT", Message: "Request timeout"},
	})
	return string(body)
}()

// Timeout bounds the whole request, provider round trips included.
// A zero timeout disables it. The timeout reply is JSON like every other error.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		timeoutHandler := http.TimeoutHandler(next, timeout, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
