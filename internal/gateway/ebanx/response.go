package ebanx

import (
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
)

const statusSuccess = "SUCCESS"

// Payment statuses reported inside the payment object.
const (
	PaymentRequested = "OP"
	PaymentPending   = "PE"
	PaymentConfirmed = "CO"
	PaymentCancelled = "CA"
)

type strategy struct{}

func (strategy) Name() string {
	return "ebanx_checkout"
}

// ClassifyFailure never classifies: Ebanx reports errors in a 2xx body, so an
// HTTP failure is unexpected and goes back to the caller.
func (strategy) ClassifyFailure(*gateway.Failure) (domain.Result, bool) {
	return domain.Result{}, false
}

func (strategy) BuildResult(_ string, raw map[string]any) domain.Result {
	success := successFrom(raw)
	return domain.Result{
		Success:       success,
		Message:       messageFrom(raw, success),
		Authorization: authorizationFrom(raw, success),
		ErrorKind:     errorKindFrom(success),
		Raw:           raw,
	}
}

func successFrom(raw map[string]any) bool {
	return gateway.String(raw, "status") == statusSuccess
}

func messageFrom(raw map[string]any, success bool) string {
	if success {
		return "Success"
	}
	return gateway.String(raw, "status_message")
}

func authorizationFrom(raw map[string]any, success bool) string {
	if !success {
		return ""
	}
	return gateway.String(raw, "payment", "hash")
}

func errorKindFrom(success bool) domain.ErrorKind {
	if success {
		return domain.ErrorKindNone
	}
	return domain.ErrorKindProcessing
}

// Details reads the payment object of a setup or details result.
type Details struct {
	payment map[string]any
}

func DetailsOf(result domain.Result) Details {
	return Details{payment: gateway.Object(result.Raw, "payment")}
}

func (d Details) field(key string) string { return gateway.String(d.payment, key) }

func (d Details) Hash() string { return d.field("hash") }
func (d Details) Pin() string { return d.field("pin") }
func (d Details) Country() string { return d.field("country") }
func (d Details) OrderID() string { return d.field("merchant_payment_code") }
func (d Details) OrderNumber() string { return d.field("order_number") }
func (d Details) Status() string { return d.field("status") }
func (d Details) StatusDate() string { return d.field("status_date") }
func (d Details) OpenDate() string { return d.field("open_date") }
func (d Details) ConfirmDate() string { return d.field("confirm_date") }
func (d Details) TransferDate() string { return d.field("transfer_date") }
func (d Details) AmountBR() string { return d.field("amount_br") }
func (d Details) AmountExt() string { return d.field("amount_ext") }
func (d Details) AmountIOF() string { return d.field("amount_iof") }
func (d Details) CurrencyRate() string { return d.field("currency_rate") }
func (d Details) CurrencyExt() string { return d.field("currency_ext") }
func (d Details) DueDate() string { return d.field("due_date") }
func (d Details) Instalments() string { return d.field("instalments") }
func (d Details) PaymentTypeCode() string { return d.field("payment_type_code") }

func (d Details) PreApproved() bool {
	v, _ := d.payment["pre_approved"].(bool)
	return v
}

func (d Details) CaptureAvailable() bool {
	v, _ := d.payment["capture_available"].(bool)
	return v
}

func (d Details) Requested() bool { return d.Status() == PaymentRequested }
func (d Details) Pending() bool { return d.Status() == PaymentPending }
func (d Details) Confirmed() bool { return d.Status() == PaymentConfirmed }
func (d Details) Cancelled() bool { return d.Status() == PaymentCancelled }
