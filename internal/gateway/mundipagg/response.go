package mundipagg

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
)

var successStatuses = []string{"pending", "paid", "processing", "canceled", "active"}

type failureClass struct {
	message string
	kind    domain.ErrorKind
}

// 404, 412, 422 and 500 stay processing errors; the provider gives no finer split.
var failureClasses = map[int]failureClass{
	http.StatusBadRequest:          {"Invalid request", domain.ErrorKindProcessing},
	http.StatusUnauthorized:        {"Invalid API key", domain.ErrorKindConfig},
	http.StatusNotFound:            {"The requested resource does not exist", domain.ErrorKindProcessing},
	http.StatusPreconditionFailed:  {"Valid parameters but request failed", domain.ErrorKindProcessing},
	http.StatusUnprocessableEntity: {"Invalid parameters", domain.ErrorKindProcessing},
	http.StatusInternalServerError: {"An internal error occurred", domain.ErrorKindProcessing},
}

type strategy struct{}

func (strategy) Name() string {
	return "mundipagg"
}

func (strategy) ClassifyFailure(f *gateway.Failure) (domain.Result, bool) {
	class, ok := failureClasses[f.StatusCode]
	if !ok {
		return domain.Result{}, false
	}
	message := class.message
	if detail := failureMessage(f); detail != "" {
		message = fmt.Sprintf("%s; %s", message, detail)
	}
	return domain.Result{
		Success:   false,
		Message:   message,
		ErrorKind: class.kind,
		Raw:       map[string]any{},
	}, true
}

// failureMessage is the "message" field of the failed reply, or "" when the
// body is not JSON or has no message.
func failureMessage(f *gateway.Failure) string {
	raw, err := gateway.ParseBody(f.Body)
	if err != nil {
		return ""
	}
	return gateway.String(raw, "message")
}

func (strategy) BuildResult(action string, raw map[string]any) domain.Result {
	success := successFrom(raw)
	result := domain.Result{
		Success:       success,
		Message:       messageFrom(raw, success),
		Authorization: authorizationFrom(raw, action),
		Raw:           raw,
	}
	if !success {
		result.ErrorKind = domain.ErrorKindProcessing
	}
	return result
}

func successFrom(raw map[string]any) bool {
	return slices.Contains(successStatuses, gateway.String(raw, "status"))
}

func messageFrom(raw map[string]any, success bool) string {
	if msg := gateway.String(raw, "message"); msg != "" {
		return msg
	}
	if msg := gateway.String(raw, "last_transaction", "acquirer_message"); msg != "" {
		return msg
	}
	if success {
		return "Success"
	}
	return gateway.String(raw, "status_message")
}

func authorizationFrom(raw map[string]any, action string) string {
	if action != actionStore {
		return gateway.String(raw, "id")
	}
	auth, err := domain.NewCompositeAuthorization(gateway.String(raw, "customer", "id"), gateway.String(raw, "id"))
	if err != nil {
		return ""
	}
	return auth.Encode()
}
