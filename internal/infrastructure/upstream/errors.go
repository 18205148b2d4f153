package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBudgetExhausted is returned when the local request budget refuses a call.
// No request reaches the upstream.
var ErrBudgetExhausted = errors.New("local request budget exhausted")

// UpstreamError reports an upstream that answered, but with an error status or an unusable body
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// ConnectivityError reports an upstream that could not be reached at all
type ConnectivityError struct {
	Service string
	Message string
	Err     error
}

func (e *ConnectivityError) Error() string {
	return e.Message
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

func newStatusError(service string, status int) *UpstreamError {
	return &UpstreamError{
		Service:    service,
		StatusCode: status,
		Message:    fmt.Sprintf("%s API error: %d", service, status),
	}
}

func newMalformedError(service string, status int) *UpstreamError {
	return &UpstreamError{
		Service:    service,
		StatusCode: status,
		Message:    fmt.Sprintf("%s API returned a malformed payload", service),
	}
}

func newBudgetError(service string) error {
	return fmt.Errorf("%s request not sent: %w", service, ErrBudgetExhausted)
}

func newConnectivityError(service string, err error) *ConnectivityError {
	return &ConnectivityError{
		Service: service,
		Message: fmt.Sprintf("cannot reach %s API", service),
		Err:     err,
	}
}

// NewPayloadError reports a 2xx body that parsed but lacks what the caller needs
func NewPayloadError(service, message string) *UpstreamError {
	return &UpstreamError{
		Service:    service,
		StatusCode: http.StatusOK,
		Message:    fmt.Sprintf("%s API %s", service, message),
	}
}

// IsUpstreamFailure reports whether err came from talking to an upstream.
// ErrBudgetExhausted is a local refusal and does not count.
func IsUpstreamFailure(err error) bool {
	var upstreamErr *UpstreamError
	var connErr *ConnectivityError
	return errors.As(err, &upstreamErr) || errors.As(err, &connErr)
}
