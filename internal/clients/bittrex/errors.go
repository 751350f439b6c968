package bittrex

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTransport is matched by errors that happened before any HTTP status was received.
	ErrTransport = errors.New("bittrex transport failure")
	// ErrMalformedResponse is returned when the body is not a valid response envelope.
	ErrMalformedResponse = errors.New("bittrex malformed response")
	// ErrInvalidCredential is returned when a private endpoint is called without api key and secret.
	ErrInvalidCredential = errors.New("bittrex api key and secret are required")
	// ErrReservedParam is returned when caller parameters contain apikey or nonce.
	ErrReservedParam = errors.New("bittrex reserved parameter")
	// ErrNoResult is returned when the exchange answers with a null result where an object is expected.
	ErrNoResult = errors.New("bittrex empty result")
)

// HTTPStatusError non-2xx response. It is never retried.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("bittrex responded with status %d", e.StatusCode)
}

// APIError the exchange rejected the request (envelope success=false).
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bittrex request failed: %s", e.Message)
}

// transportError wraps network failures so that they match ErrTransport and keep their cause.
type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTransport, e.err)
}

func (e *transportError) Unwrap() error {
	return e.err
}

func (e *transportError) Is(target error) bool {
	return target == ErrTransport
}

func isTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
