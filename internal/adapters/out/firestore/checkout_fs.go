// internal/adapters/out/firestore/checkout_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"houseit/internal/domain/common"
	orderdom "houseit/internal/domain/order"
)

// CheckoutFS performs the create-request + clear-cart pair as a single
// Firestore transaction: either the request exists and the cart is
// empty, or neither happened. The total is recomputed from the cart
// read inside the transaction, so a stale client total can never be
// persisted.
type CheckoutFS struct {
	Client *firestore.Client
}

func NewCheckoutFS(client *firestore.Client) *CheckoutFS {
	return &CheckoutFS{Client: client}
}

// Checkout converts the user's cart into a pending booking request.
// Returns the created request (ID populated; CreatedAt is assigned by
// the store and left zero here).
func (c *CheckoutFS) Checkout(ctx context.Context, userID, checkoutID string) (orderdom.Request, error) {
	if c == nil || c.Client == nil {
		return orderdom.Request{}, errors.New("checkout_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return orderdom.Request{}, fmt.Errorf("checkout_fs: %w: userID is empty", common.ErrInvalidArgument)
	}

	userDoc := c.Client.Collection("users").Doc(uid)
	cartCol := userDoc.Collection("cart")
	requestsCol := userDoc.Collection("requests")

	var created orderdom.Request

	err := c.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// Reads first (Firestore transactions require reads before
		// writes).
		iter := tx.Documents(cartCol)
		defer iter.Stop()

		var cartRefs []*firestore.DocumentRef
		var items []orderdom.ItemSnapshot
		for {
			snap, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return err
			}
			cartRefs = append(cartRefs, snap.Ref)

			it := itemFromSnapshot(snap)
			if it.Validate() != nil {
				continue
			}
			items = append(items, orderdom.ItemSnapshot{
				ID:          it.ID,
				Name:        it.Name,
				Price:       it.Price,
				Quantity:    it.Quantity,
				Description: it.Description,
			})
		}

		if len(items) == 0 {
			return orderdom.ErrEmptyItems
		}

		req, err := orderdom.New(uid, items, orderdom.SnapshotTotal(items), checkoutID)
		if err != nil {
			return err
		}

		ref := requestsCol.NewDoc()
		if err := tx.Create(ref, requestDocFromDomain(req)); err != nil {
			return err
		}
		for _, cr := range cartRefs {
			if err := tx.Delete(cr); err != nil {
				return err
			}
		}

		req.ID = ref.ID
		created = req
		return nil
	})
	if err != nil {
		if errors.Is(err, orderdom.ErrEmptyItems) {
			return orderdom.Request{}, orderdom.ErrEmptyItems
		}
		return orderdom.Request{}, mapErr("checkout_fs: checkout", err)
	}

	return created, nil
}
