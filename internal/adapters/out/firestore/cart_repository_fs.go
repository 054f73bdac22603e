// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	cartdom "houseit/internal/domain/cart"
	"houseit/internal/domain/common"
)

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design (matches the mobile client):
// - users/{userId}/cart/{itemId}
// - docId is the item id (source of truth)
// - updatedAt is server-stamped on every write
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col(userID string) *firestore.CollectionRef {
	return r.Client.Collection("users").Doc(userID).Collection("cart")
}

// AddOrIncrement upserts by item id inside a transaction so two rapid
// add taps cannot lose an increment.
func (r *CartRepositoryFS) AddOrIncrement(ctx context.Context, userID string, item cartdom.Item) (cartdom.Item, error) {
	if r == nil || r.Client == nil {
		return cartdom.Item{}, errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return cartdom.Item{}, fmt.Errorf("cart_repository_fs: %w: userID is empty", common.ErrInvalidArgument)
	}
	if err := item.Validate(); err != nil {
		return cartdom.Item{}, fmt.Errorf("cart_repository_fs: %w: %v", common.ErrInvalidArgument, err)
	}

	ref := r.col(uid).Doc(item.ID)

	out := item
	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && !isNotFound(err) {
			return err
		}

		out = item
		if err == nil && snap.Exists() {
			existing := itemFromSnapshot(snap)
			out.Quantity = existing.Quantity + 1
		}
		return tx.Set(ref, cartItemDocFromDomain(out))
	})
	if err != nil {
		return cartdom.Item{}, mapErr("cart_repository_fs: add", err)
	}
	return out, nil
}

// List returns every item; an absent cart is an empty slice.
func (r *CartRepositoryFS) List(ctx context.Context, userID string) ([]cartdom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, fmt.Errorf("cart_repository_fs: %w: userID is empty", common.ErrInvalidArgument)
	}

	iter := r.col(uid).Documents(ctx)
	defer iter.Stop()

	items := []cartdom.Item{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr("cart_repository_fs: list", err)
		}
		it := itemFromSnapshot(snap)
		if it.Validate() != nil {
			// skip malformed legacy documents rather than failing the
			// whole listing
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// SetQuantity writes the exact quantity; qty <= 0 deletes the document.
func (r *CartRepositoryFS) SetQuantity(ctx context.Context, userID, itemID string, qty int) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	iid := strings.TrimSpace(itemID)
	if uid == "" || iid == "" {
		return fmt.Errorf("cart_repository_fs: %w: userID/itemID is empty", common.ErrInvalidArgument)
	}

	ref := r.col(uid).Doc(iid)

	if qty <= 0 {
		// Firestore deletes succeed on absent documents, which gives
		// the required remove-idempotence for free.
		if _, err := ref.Delete(ctx); err != nil {
			return mapErr("cart_repository_fs: remove", err)
		}
		return nil
	}

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "quantity", Value: qty},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return mapErr("cart_repository_fs: set quantity", err)
	}
	return nil
}

// Clear deletes every cart document in chunked transactions.
func (r *CartRepositoryFS) Clear(ctx context.Context, userID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return fmt.Errorf("cart_repository_fs: %w: userID is empty", common.ErrInvalidArgument)
	}

	iter := r.col(uid).Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return mapErr("cart_repository_fs: clear (scan)", err)
		}
		refs = append(refs, snap.Ref)
	}

	if len(refs) == 0 {
		return nil
	}

	const chunkSize = 400
	for start := 0; start < len(refs); start += chunkSize {
		end := start + chunkSize
		if end > len(refs) {
			end = len(refs)
		}
		chunk := refs[start:end]

		err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
			for _, ref := range chunk {
				if err := tx.Delete(ref); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return mapErr("cart_repository_fs: clear", err)
		}
	}
	return nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartItemDoc struct {
	ID          string  `firestore:"id"`
	Name        string  `firestore:"name"`
	Price       float64 `firestore:"price"`
	Quantity    int     `firestore:"quantity"`
	Description string  `firestore:"description,omitempty"`

	// Zero value -> server timestamp on write.
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

func cartItemDocFromDomain(it cartdom.Item) cartItemDoc {
	return cartItemDoc{
		ID:          it.ID,
		Name:        it.Name,
		Price:       it.Price,
		Quantity:    it.Quantity,
		Description: it.Description,
	}
}

// itemFromSnapshot parses raw document data with backward compatibility
// (the mobile client wrote numeric ids and ints where floats are
// expected). docId is the id source of truth.
func itemFromSnapshot(snap *firestore.DocumentSnapshot) cartdom.Item {
	it := cartdom.Item{ID: snap.Ref.ID}
	raw := snap.Data()
	if raw == nil {
		return it
	}

	it.Name = strings.TrimSpace(asString(raw["name"]))
	it.Price = asFloat(raw["price"])
	it.Quantity = asInt(raw["quantity"])
	it.Description = strings.TrimSpace(asString(raw["description"]))
	if t, ok := asTime(raw["updatedAt"]); ok {
		it.UpdatedAt = t
	}
	return it
}
