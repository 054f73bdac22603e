// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is the persistence port for a user's cart.
//
// Storage (Firestore):
// - collection: users/{userId}/cart
// - docId: item id
// - fields: id, name, price, quantity, description, updatedAt
//
// Every mutating call stamps updatedAt with the server timestamp.
// Error policy: common.ErrInvalidArgument for empty identifiers or
// malformed items, common.ErrStoreUnavailable (wrapped) for transport
// failures.
type Repository interface {
	// AddOrIncrement upserts item by id: if a document with item.ID
	// exists, quantity becomes existing.Quantity+1 (name/price/
	// description refreshed from item); otherwise item is inserted
	// with quantity 1 (or item.Quantity when it is > 1).
	AddOrIncrement(ctx context.Context, userID string, item Item) (Item, error)

	// List returns every item in the user's cart; order is not
	// significant. An absent cart is an empty slice, not an error.
	List(ctx context.Context, userID string) ([]Item, error)

	// SetQuantity writes the exact quantity for itemID.
	// qty <= 0 removes the item; removing an absent item is a no-op.
	SetQuantity(ctx context.Context, userID, itemID string, qty int) error

	// Clear deletes every item in the user's cart. Safe to call on an
	// already-empty cart (no-op, not an error).
	Clear(ctx context.Context, userID string) error
}
