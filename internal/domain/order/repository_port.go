// internal/domain/order/repository_port.go
package order

import "context"

// Repository is the persistence port for booking requests.
//
// Storage (Firestore):
// - collection: users/{userId}/requests
// - docId: store-assigned (auto id)
// - fields: items, total, status, checkoutId, createdAt
//
// createdAt is assigned by the store at write time. Requests are never
// deleted by the client.
type Repository interface {
	// Create persists req with status=pending and returns the assigned
	// id. common.ErrInvalidArgument when items are empty or total does
	// not match the computed sum; common.ErrStoreUnavailable (wrapped)
	// on transport failure.
	Create(ctx context.Context, userID string, req Request) (string, error)

	// List returns every request for the user, most recent first
	// (SortMostRecentFirst order).
	List(ctx context.Context, userID string) ([]Request, error)

	// Get returns one request. common.ErrNotFound when absent.
	Get(ctx context.Context, userID, requestID string) (Request, error)
}
