// internal/domain/common/errors.go
package common

import (
	"errors"
	"fmt"
)

// Shared error taxonomy. Repositories classify transport failures into
// these sentinels (wrapping the cause with %w); usecases add step
// context before surfacing to the transport layer.
var (
	// ErrInvalidArgument: missing/empty required identifier or a
	// malformed entity (non-positive price/quantity, total mismatch).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStoreUnavailable: any transport/store failure (network,
	// permission, quota, deadline). Surfaced to the caller; mutating
	// flows are never auto-retried.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound: the requested document does not exist.
	ErrNotFound = errors.New("not found")
)

// PartialCheckoutError reports a checkout where the booking request was
// created but the cart failed to clear. RequestID identifies the request
// that must NOT be re-created; callers retry the clear alone.
type PartialCheckoutError struct {
	RequestID string
	Err       error
}

func (e *PartialCheckoutError) Error() string {
	return fmt.Sprintf("checkout partially failed: request %s created but cart not cleared: %v", e.RequestID, e.Err)
}

func (e *PartialCheckoutError) Unwrap() error { return e.Err }

// AsPartialCheckout extracts a PartialCheckoutError from an error chain.
func AsPartialCheckout(err error) (*PartialCheckoutError, bool) {
	var pe *PartialCheckoutError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
