// internal/adapters/out/firestore/request_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"houseit/internal/domain/common"
	orderdom "houseit/internal/domain/order"
)

// RequestRepositoryFS implements order.Repository using Firestore.
//
// Collection design (matches the mobile client):
// - users/{userId}/requests/{autoId}
// - createdAt is server-stamped at write time
// - requests are never deleted by this service
type RequestRepositoryFS struct {
	Client *firestore.Client
}

func NewRequestRepositoryFS(client *firestore.Client) *RequestRepositoryFS {
	return &RequestRepositoryFS{Client: client}
}

func (r *RequestRepositoryFS) col(userID string) *firestore.CollectionRef {
	return r.Client.Collection("users").Doc(userID).Collection("requests")
}

// Create persists a pending request and returns the assigned id.
// Items and total are re-verified here: a mismatching total must never
// reach the store.
func (r *RequestRepositoryFS) Create(ctx context.Context, userID string, req orderdom.Request) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("request_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return "", fmt.Errorf("request_repository_fs: %w: userID is empty", common.ErrInvalidArgument)
	}
	if len(req.Items) == 0 {
		return "", fmt.Errorf("request_repository_fs: %w: %v", common.ErrInvalidArgument, orderdom.ErrEmptyItems)
	}
	if !orderdom.TotalMatches(req.Items, req.Total) {
		return "", fmt.Errorf("request_repository_fs: %w: %v", common.ErrInvalidArgument, orderdom.ErrTotalMismatch)
	}

	ref := r.col(uid).NewDoc()
	if _, err := ref.Create(ctx, requestDocFromDomain(req)); err != nil {
		return "", mapErr("request_repository_fs: create", err)
	}
	return ref.ID, nil
}

// List returns every request, most recent first.
func (r *RequestRepositoryFS) List(ctx context.Context, userID string) ([]orderdom.Request, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("request_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, fmt.Errorf("request_repository_fs: %w: userID is empty", common.ErrInvalidArgument)
	}

	iter := r.col(uid).Documents(ctx)
	defer iter.Stop()

	out := []orderdom.Request{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr("request_repository_fs: list", err)
		}
		out = append(out, requestFromSnapshot(uid, snap))
	}

	orderdom.SortMostRecentFirst(out)
	return out, nil
}

// Get returns one request; common.ErrNotFound when absent.
func (r *RequestRepositoryFS) Get(ctx context.Context, userID, requestID string) (orderdom.Request, error) {
	if r == nil || r.Client == nil {
		return orderdom.Request{}, errors.New("request_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	rid := strings.TrimSpace(requestID)
	if uid == "" || rid == "" {
		return orderdom.Request{}, fmt.Errorf("request_repository_fs: %w: userID/requestID is empty", common.ErrInvalidArgument)
	}

	snap, err := r.col(uid).Doc(rid).Get(ctx)
	if err != nil {
		return orderdom.Request{}, mapErr("request_repository_fs: get", err)
	}
	return requestFromSnapshot(uid, snap), nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type requestDoc struct {
	Items      []requestItemDoc `firestore:"items"`
	Total      float64          `firestore:"total"`
	Status     string           `firestore:"status"`
	CheckoutID string           `firestore:"checkoutId,omitempty"`

	// Zero value -> server timestamp on write.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

type requestItemDoc struct {
	ID          string  `firestore:"id"`
	Name        string  `firestore:"name"`
	Price       float64 `firestore:"price"`
	Quantity    int     `firestore:"quantity"`
	Description string  `firestore:"description,omitempty"`
}

func requestDocFromDomain(req orderdom.Request) requestDoc {
	items := make([]requestItemDoc, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, requestItemDoc{
			ID:          it.ID,
			Name:        it.Name,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Description: it.Description,
		})
	}

	st := req.Status
	if !st.Valid() {
		st = orderdom.StatusPending
	}

	return requestDoc{
		Items:      items,
		Total:      req.Total,
		Status:     string(st),
		CheckoutID: req.CheckoutID,
	}
}

// requestFromSnapshot parses raw document data with backward
// compatibility: legacy app documents may miss status or createdAt and
// carry numeric drift in items.
func requestFromSnapshot(userID string, snap *firestore.DocumentSnapshot) orderdom.Request {
	req := orderdom.Request{
		ID:     snap.Ref.ID,
		UserID: userID,
		Status: orderdom.StatusPending,
	}

	raw := snap.Data()
	if raw == nil {
		return req
	}

	req.Total = asFloat(raw["total"])
	req.Status = orderdom.ParseStatus(asString(raw["status"]))
	req.CheckoutID = strings.TrimSpace(asString(raw["checkoutId"]))
	if t, ok := asTime(raw["createdAt"]); ok {
		req.CreatedAt = t
	}

	if itemsAny, ok := raw["items"].([]any); ok {
		items := make([]orderdom.ItemSnapshot, 0, len(itemsAny))
		for _, v := range itemsAny {
			m, ok := v.(map[string]any)
			if !ok {
				continue
			}
			it := orderdom.ItemSnapshot{
				ID:          strings.TrimSpace(asString(m["id"])),
				Name:        strings.TrimSpace(asString(m["name"])),
				Price:       asFloat(m["price"]),
				Quantity:    asInt(m["quantity"]),
				Description: strings.TrimSpace(asString(m["description"])),
			}
			// legacy docs stored numeric ids
			if it.ID == "" {
				if n := asInt(m["id"]); n > 0 {
					it.ID = fmt.Sprintf("%d", n)
				}
			}
			items = append(items, it)
		}
		req.Items = items
	}

	return req
}
