// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidItem = errors.New("cart: invalid item")
)

// Item represents one line item in a user's cart.
// Storage: one Firestore document per item, users/{uid}/cart/{id}.
// Identity is the item id; adding the same id again increments quantity.
type Item struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Price       float64 `json:"price" firestore:"price"`
	Quantity    int     `json:"quantity" firestore:"quantity"`
	Description string  `json:"description,omitempty" firestore:"description,omitempty"`

	// UpdatedAt is server-assigned on every mutation; clients must not
	// rely on their own clock.
	UpdatedAt time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,serverTimestamp"`
}

// NewItem builds a validated line item. qty <= 0 defaults to 1
// (a fresh add always starts at quantity 1).
func NewItem(id, name string, price float64, qty int, description string) (Item, error) {
	if qty <= 0 {
		qty = 1
	}
	it := Item{
		ID:          strings.TrimSpace(id),
		Name:        strings.TrimSpace(name),
		Price:       price,
		Quantity:    qty,
		Description: strings.TrimSpace(description),
	}
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	return it, nil
}

// Validate checks the item invariants:
// - id and name must be non-empty
// - price must be >= 0 and finite
// - quantity must be a positive integer
func (it Item) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return ErrInvalidItem
	}
	if strings.TrimSpace(it.Name) == "" {
		return ErrInvalidItem
	}
	if it.Price < 0 || math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
		return ErrInvalidItem
	}
	if it.Quantity < 1 {
		return ErrInvalidItem
	}
	return nil
}

// Subtotal is price * quantity for this line.
func (it Item) Subtotal() float64 {
	return it.Price * float64(it.Quantity)
}

// Total sums price*quantity over items.
func Total(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}

// Normalize drops invalid entries, merges duplicate ids by summing
// quantities, and returns the result in stable id order.
func Normalize(items []Item) []Item {
	m := map[string]Item{}
	for _, it := range items {
		id := strings.TrimSpace(it.ID)
		if id == "" || it.Quantity <= 0 {
			continue
		}
		if exist, ok := m[id]; ok {
			exist.Quantity += it.Quantity
			if strings.TrimSpace(exist.Name) == "" {
				exist.Name = strings.TrimSpace(it.Name)
			}
			if strings.TrimSpace(exist.Description) == "" {
				exist.Description = strings.TrimSpace(it.Description)
			}
			m[id] = exist
		} else {
			it.ID = id
			it.Name = strings.TrimSpace(it.Name)
			it.Description = strings.TrimSpace(it.Description)
			m[id] = it
		}
	}

	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}
