package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a failure raised before or after a provider call
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code, so the sentinels below
// work with errors.Is regardless of message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

const (
	ErrCodeMissingParameter  = "MISSING_PARAMETER"
	ErrCodeInvalidArgument   = "INVALID_ARGUMENT"
	ErrCodeMalformedResponse = "MALFORMED_RESPONSE"
)

var (
	ErrMissingParameter  = &DomainError{Code: ErrCodeMissingParameter, Message: "missing required parameter"}
	ErrInvalidArgument   = &DomainError{Code: ErrCodeInvalidArgument, Message: "invalid argument"}
	ErrMalformedResponse = &DomainError{Code: ErrCodeMalformedResponse, Message: "malformed response"}
)

func NewMissingParameterError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingParameter,
		Message: fmt.Sprintf("Missing required parameter: %s", field),
	}
}

func NewInvalidArgumentError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewMalformedResponseError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeMalformedResponse,
		Message: "could not decode provider response",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
