// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "houseit/internal/domain/cart"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
)

// CartUsecase coordinates cart operations. State policy: the store is
// authoritative: every mutation is followed by one full fetch, and the
// fetched view is what callers render.
type CartUsecase struct {
	repo cartdom.Repository
}

func NewCartUsecase(repo cartdom.Repository) *CartUsecase {
	return &CartUsecase{repo: repo}
}

// CartView is the authoritative post-operation view.
type CartView struct {
	Items []cartdom.Item `json:"items"`
	Total float64        `json:"total"`
}

// Get returns the current cart. An absent cart is an empty view.
func (uc *CartUsecase) Get(ctx context.Context, userID string) (CartView, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return CartView{}, ErrCartInvalidArgument
	}

	var items []cartdom.Item
	err := retryRead(ctx, func(opCtx context.Context) error {
		var e error
		items, e = uc.repo.List(opCtx, uid)
		return classifyDeadline("cart_usecase: list", e)
	})
	if err != nil {
		return CartView{}, err
	}
	return CartView{Items: items, Total: cartdom.Total(items)}, nil
}

// AddItem upserts the item by id (existing id -> quantity+1) and
// returns the refreshed cart.
func (uc *CartUsecase) AddItem(ctx context.Context, userID string, item cartdom.Item) (CartView, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return CartView{}, ErrCartInvalidArgument
	}
	if err := item.Validate(); err != nil {
		return CartView{}, ErrCartInvalidArgument
	}

	opCtx, cancel := withOpTimeout(ctx)
	defer cancel()
	if _, err := uc.repo.AddOrIncrement(opCtx, uid, item); err != nil {
		return CartView{}, classifyDeadline("cart_usecase: add", err)
	}

	return uc.Get(ctx, uid)
}

// SetItemQuantity sets the exact quantity; qty <= 0 removes the item.
// Returns the refreshed cart.
func (uc *CartUsecase) SetItemQuantity(ctx context.Context, userID, itemID string, qty int) (CartView, error) {
	uid := strings.TrimSpace(userID)
	iid := strings.TrimSpace(itemID)
	if uid == "" || iid == "" {
		return CartView{}, ErrCartInvalidArgument
	}

	opCtx, cancel := withOpTimeout(ctx)
	defer cancel()
	if err := uc.repo.SetQuantity(opCtx, uid, iid, qty); err != nil {
		return CartView{}, classifyDeadline("cart_usecase: set quantity", err)
	}

	return uc.Get(ctx, uid)
}

// RemoveItem removes itemID from the cart.
func (uc *CartUsecase) RemoveItem(ctx context.Context, userID, itemID string) (CartView, error) {
	return uc.SetItemQuantity(ctx, userID, itemID, 0)
}

// Clear empties the cart. Clearing an already-empty cart succeeds.
func (uc *CartUsecase) Clear(ctx context.Context, userID string) error {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return ErrCartInvalidArgument
	}

	opCtx, cancel := withOpTimeout(ctx)
	defer cancel()
	return classifyDeadline("cart_usecase: clear", uc.repo.Clear(opCtx, uid))
}
