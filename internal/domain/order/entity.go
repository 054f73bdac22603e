// internal/domain/order/entity.go
package order

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"houseit/internal/domain/cart"
)

// ========================================
// Status
// ========================================

// Status is the fulfillment state of a booking request.
// Transitions move forward only: pending -> in_progress -> completed.
// The client only ever creates the pending state; later transitions are
// driven by an external fulfillment process.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether s -> next is a legal forward step.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted
	}
	return false
}

// ParseStatus normalizes a stored status string. Empty or unknown
// values fall back to pending (legacy documents have no status field).
func ParseStatus(raw string) Status {
	s := Status(strings.TrimSpace(strings.ToLower(raw)))
	if !s.Valid() {
		return StatusPending
	}
	return s
}

// ========================================
// Snapshot
// ========================================

// ItemSnapshot is a point-in-time copy of a cart line stored inside a
// request. It must never be affected by later mutation of the live cart.
type ItemSnapshot struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Price       float64 `json:"price" firestore:"price"`
	Quantity    int     `json:"quantity" firestore:"quantity"`
	Description string  `json:"description,omitempty" firestore:"description,omitempty"`
}

// SnapshotItems copies cart items into order snapshots.
func SnapshotItems(items []cart.Item) []ItemSnapshot {
	out := make([]ItemSnapshot, 0, len(items))
	for _, it := range items {
		out = append(out, ItemSnapshot{
			ID:          it.ID,
			Name:        it.Name,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Description: it.Description,
		})
	}
	return out
}

// SnapshotTotal sums price*quantity over snapshots.
func SnapshotTotal(items []ItemSnapshot) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// ========================================
// Entity
// ========================================

// Request is an immutable booking request created at checkout.
// Only Status changes after creation, and only forward.
type Request struct {
	// ID is the Firestore docId (store-assigned).
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Items []ItemSnapshot `json:"items"`
	Total float64        `json:"total"`

	Status Status `json:"status"`

	// CheckoutID correlates the request with the checkout attempt that
	// produced it (logs, archive rows).
	CheckoutID string `json:"checkoutId,omitempty"`

	// CreatedAt is store-assigned at write time. Zero on legacy
	// documents; such entries sort last in listings.
	CreatedAt time.Time `json:"createdAt"`
}

var (
	ErrInvalidUserID   = errors.New("order: invalid userId")
	ErrInvalidItems    = errors.New("order: invalid items")
	ErrEmptyItems      = errors.New("order: items is empty")
	ErrTotalMismatch   = errors.New("order: total does not match items")
	ErrInvalidStatus   = errors.New("order: invalid status")
	ErrNotFound        = errors.New("order: not found")
	ErrStatusBackwards = errors.New("order: status cannot move backwards")
)

// totalEpsilon absorbs float drift from client-side rounding
// (the app formats totals with two decimals).
const totalEpsilon = 0.005

// New builds a pending request from a cart snapshot and verifies the
// total against the items (server-side total verification).
// ID and CreatedAt stay empty: the store assigns both.
func New(userID string, items []ItemSnapshot, total float64, checkoutID string) (Request, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return Request{}, ErrInvalidUserID
	}
	ns := normalizeItems(items)
	if err := validateItems(ns); err != nil {
		return Request{}, err
	}
	if !TotalMatches(ns, total) {
		return Request{}, ErrTotalMismatch
	}

	return Request{
		UserID:     uid,
		Items:      ns,
		Total:      total,
		Status:     StatusPending,
		CheckoutID: strings.TrimSpace(checkoutID),
	}, nil
}

// TotalMatches reports whether total equals the computed item sum
// within rounding tolerance.
func TotalMatches(items []ItemSnapshot, total float64) bool {
	return math.Abs(SnapshotTotal(items)-total) <= totalEpsilon
}

// Transition applies a forward status change.
func (r *Request) Transition(next Status) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if r.Status == next {
		return nil
	}
	if !r.Status.CanTransitionTo(next) {
		return ErrStatusBackwards
	}
	r.Status = next
	return nil
}

// ========================================
// Sorting
// ========================================

// SortMostRecentFirst orders requests by createdAt descending.
// Requests without a createdAt sort last; ties (and the no-timestamp
// tail) break by id descending so the order is deterministic.
func SortMostRecentFirst(rs []Request) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		az, bz := a.CreatedAt.IsZero(), b.CreatedAt.IsZero()
		switch {
		case az && bz:
			return a.ID > b.ID
		case az:
			return false
		case bz:
			return true
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

// ========================================
// Validation helpers
// ========================================

func normalizeItems(items []ItemSnapshot) []ItemSnapshot {
	out := make([]ItemSnapshot, 0, len(items))
	for _, it := range items {
		it.ID = strings.TrimSpace(it.ID)
		it.Name = strings.TrimSpace(it.Name)
		it.Description = strings.TrimSpace(it.Description)
		out = append(out, it)
	}
	return out
}

func validateItems(items []ItemSnapshot) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	for _, it := range items {
		if it.ID == "" || it.Name == "" {
			return ErrInvalidItems
		}
		if it.Price < 0 || math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
			return ErrInvalidItems
		}
		if it.Quantity < 1 {
			return ErrInvalidItems
		}
	}
	return nil
}
