package domain

// ErrorKind classifies failed results uniformly across providers
type ErrorKind string

const (
	ErrorKindNone       ErrorKind = ""
	ErrorKindProcessing ErrorKind = "processing_error"
	ErrorKindConfig     ErrorKind = "config_error"
)

// VerificationResult summarises an address or card-code check.
type VerificationResult struct {
	Code    string
	Message string
}

// Result is the canonical outcome of a single provider operation.
// It is built once and never modified afterwards.
type Result struct {
	Success       bool
	Message       string
	Authorization string
	ErrorKind     ErrorKind
	Raw           map[string]any
	Test          bool
	AVS           *VerificationResult
	CVV           *VerificationResult
}

// Failed reports whether the provider declined or rejected the operation.
func (r Result) Failed() bool {
	return !r.Success
}
