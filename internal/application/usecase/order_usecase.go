// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	orderdom "houseit/internal/domain/order"
)

var (
	ErrOrderInvalidArgument = errors.New("order_usecase: invalid argument")
)

// OrderUsecase serves booking-request reads. Requests are created
// exclusively through CheckoutUsecase.
type OrderUsecase struct {
	repo orderdom.Repository
}

func NewOrderUsecase(repo orderdom.Repository) *OrderUsecase {
	return &OrderUsecase{repo: repo}
}

// History returns every request for the user, most recent first.
func (uc *OrderUsecase) History(ctx context.Context, userID string) ([]orderdom.Request, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrOrderInvalidArgument
	}

	var out []orderdom.Request
	err := retryRead(ctx, func(opCtx context.Context) error {
		var e error
		out, e = uc.repo.List(opCtx, uid)
		return classifyDeadline("order_usecase: list", e)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single request; common.ErrNotFound when absent.
func (uc *OrderUsecase) Get(ctx context.Context, userID, requestID string) (orderdom.Request, error) {
	uid := strings.TrimSpace(userID)
	rid := strings.TrimSpace(requestID)
	if uid == "" || rid == "" {
		return orderdom.Request{}, ErrOrderInvalidArgument
	}

	var out orderdom.Request
	err := retryRead(ctx, func(opCtx context.Context) error {
		var e error
		out, e = uc.repo.Get(opCtx, uid, rid)
		return classifyDeadline("order_usecase: get", e)
	})
	if err != nil {
		return orderdom.Request{}, err
	}
	return out, nil
}
