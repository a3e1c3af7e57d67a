package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search request lifecycle. Handlers map these to
// HTTP status classes; use cases decide per-domain whether to surface or
// swallow them.
var (
	// ErrInvalidRequest indicates missing or malformed search parameters.
	// No upstream call is made when this is returned.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamValidation indicates the provider rejected the request
	// content (bad airport code, past date). Client error, not retryable.
	ErrUpstreamValidation = errors.New("upstream rejected search parameters")

	// ErrUpstreamUnavailable indicates a network failure, timeout, or
	// unexpected provider error.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

	// ErrUnsupportedLocation indicates the provider does not serve the
	// requested rental market. The car search swallows this.
	ErrUnsupportedLocation = errors.New("location not supported by provider")
)

// ProviderError wraps an error from the upstream travel-data provider with
// the operation that produced it and a retryability hint.
type ProviderError struct {
	// Op is the provider operation, e.g. "flight-offers"
	Op string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the operation may succeed on retry
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(op string, err error) *ProviderError {
	return &ProviderError{Op: op, Err: err}
}

// NewRetryableProviderError creates a retryable provider error.
func NewRetryableProviderError(op string, err error) *ProviderError {
	return &ProviderError{Op: op, Err: err, Retryable: true}
}

// IsRetryable reports whether err is a provider error marked retryable.
func IsRetryable(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Retryable
}
