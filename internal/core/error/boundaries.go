package errx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the outbound boundaries. Callers use errors.Is against
// these to decide whether a failure degrades to empty data or escalates to
// the deterministic fallback path.
var (
	// ErrUpstreamUnreachable marks a transport-level failure (timeout,
	// connection refused) talking to the menu or order service.
	ErrUpstreamUnreachable = errors.New("upstream service unreachable")

	// ErrBackendUnavailable marks a model backend that could not be
	// instantiated or answered with a transport/quota failure.
	ErrBackendUnavailable = errors.New("model backend unavailable")

	// ErrOrderNotFound marks an order id the order service does not know,
	// as opposed to the service being unreachable.
	ErrOrderNotFound = errors.New("order not found")
)

// WrapUpstream tags err as a menu/order transport failure.
func WrapUpstream(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     errors.Join(ErrUpstreamUnreachable, err),
		Status:  http.StatusBadGateway,
		Message: UpstreamErrorMessage,
	}
}

// WrapBackend tags err as a model backend failure.
func WrapBackend(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     errors.Join(ErrBackendUnavailable, err),
		Status:  http.StatusServiceUnavailable,
		Message: BackendErrorMessage,
	}
}
