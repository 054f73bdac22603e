// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	cartdom "houseit/internal/domain/cart"
	"houseit/internal/domain/common"
	orderdom "houseit/internal/domain/order"
)

var (
	ErrCheckoutInvalidArgument = errors.New("checkout_usecase: invalid argument")

	// ErrEmptyCart: checkout attempted with no items. User-correctable;
	// never retried automatically.
	ErrEmptyCart = errors.New("checkout_usecase: cart is empty")
)

// AtomicCheckout is an optional store capability: convert the cart into
// a pending request and empty the cart in one all-or-nothing write.
// The Firestore adapter implements it with a transaction.
type AtomicCheckout interface {
	Checkout(ctx context.Context, userID, checkoutID string) (orderdom.Request, error)
}

// ConfirmationSender delivers the booking confirmation. Best-effort:
// a failed mail never fails the checkout.
type ConfirmationSender interface {
	SendBookingConfirmation(ctx context.Context, to string, req orderdom.Request) error
}

// RequestArchiver mirrors confirmed requests into the reporting store.
// Best-effort, same policy as mail.
type RequestArchiver interface {
	Archive(ctx context.Context, req orderdom.Request) error
}

// CheckoutUsecase converts the current cart into a confirmed booking
// request as a single logical user action.
type CheckoutUsecase struct {
	cartRepo  cartdom.Repository
	orderRepo orderdom.Repository

	// atomic, when present, replaces the create-then-clear pair.
	atomic AtomicCheckout

	// optional side channels
	sender   ConfirmationSender
	archiver RequestArchiver

	newID func() string
}

func NewCheckoutUsecase(cartRepo cartdom.Repository, orderRepo orderdom.Repository) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		newID:     uuid.NewString,
	}
}

// WithAtomic installs the transactional checkout path.
func (uc *CheckoutUsecase) WithAtomic(a AtomicCheckout) *CheckoutUsecase {
	uc.atomic = a
	return uc
}

// WithConfirmationSender installs the booking-confirmation mailer.
func (uc *CheckoutUsecase) WithConfirmationSender(s ConfirmationSender) *CheckoutUsecase {
	uc.sender = s
	return uc
}

// WithArchiver installs the reporting mirror.
func (uc *CheckoutUsecase) WithArchiver(a RequestArchiver) *CheckoutUsecase {
	uc.archiver = a
	return uc
}

// PlaceOrder runs the checkout:
//  1. empty cart -> ErrEmptyCart
//  2. total computed from the cart snapshot
//  3. request created with status=pending (store-assigned id/createdAt)
//  4. cart cleared
//
// With the atomic path, 3+4 are one transaction: on any failure the
// cart is unchanged and no request exists. On the fallback path a
// failed clear after a successful create surfaces
// *common.PartialCheckoutError carrying the request id; callers may
// retry the clear, never the create.
//
// email is optional; when present a confirmation is sent best-effort.
func (uc *CheckoutUsecase) PlaceOrder(ctx context.Context, userID, email string) (orderdom.Request, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return orderdom.Request{}, ErrCheckoutInvalidArgument
	}

	checkoutID := uc.newID()

	var (
		req orderdom.Request
		err error
	)
	if uc.atomic != nil {
		req, err = uc.placeAtomic(ctx, uid, checkoutID)
	} else {
		req, err = uc.placeSequential(ctx, uid, checkoutID)
	}
	if err != nil {
		return orderdom.Request{}, err
	}

	log.Printf("[checkout_uc] OK: request created user=%s requestId=%s checkoutId=%s total=%.2f items=%d",
		uid, req.ID, checkoutID, req.Total, len(req.Items),
	)

	uc.notify(ctx, email, req)
	uc.archive(ctx, req)

	return req, nil
}

func (uc *CheckoutUsecase) placeAtomic(ctx context.Context, userID, checkoutID string) (orderdom.Request, error) {
	opCtx, cancel := withOpTimeout(ctx)
	defer cancel()

	req, err := uc.atomic.Checkout(opCtx, userID, checkoutID)
	if err != nil {
		if errors.Is(err, orderdom.ErrEmptyItems) {
			return orderdom.Request{}, ErrEmptyCart
		}
		return orderdom.Request{}, classifyDeadline("checkout_usecase: atomic checkout", err)
	}
	return req, nil
}

// placeSequential is the compensating-action path for stores without
// multi-document transactions. Exercised directly by tests; production
// wiring always installs the atomic path.
func (uc *CheckoutUsecase) placeSequential(ctx context.Context, userID, checkoutID string) (orderdom.Request, error) {
	var items []cartdom.Item
	err := retryRead(ctx, func(opCtx context.Context) error {
		var e error
		items, e = uc.cartRepo.List(opCtx, userID)
		return classifyDeadline("checkout_usecase: load cart", e)
	})
	if err != nil {
		return orderdom.Request{}, err
	}
	if len(items) == 0 {
		return orderdom.Request{}, ErrEmptyCart
	}

	snaps := orderdom.SnapshotItems(items)
	req, err := orderdom.New(userID, snaps, orderdom.SnapshotTotal(snaps), checkoutID)
	if err != nil {
		return orderdom.Request{}, fmt.Errorf("checkout_usecase: %w: %v", common.ErrInvalidArgument, err)
	}

	// No retry from here on: a second create would duplicate the
	// booking.
	createCtx, cancelCreate := withOpTimeout(ctx)
	defer cancelCreate()
	id, err := uc.orderRepo.Create(createCtx, userID, req)
	if err != nil {
		return orderdom.Request{}, classifyDeadline("checkout_usecase: create request", err)
	}
	req.ID = id

	clearCtx, cancelClear := withOpTimeout(ctx)
	defer cancelClear()
	if err := uc.cartRepo.Clear(clearCtx, userID); err != nil {
		log.Printf("[checkout_uc] WARN: cart clear failed after create user=%s requestId=%s err=%v",
			userID, id, err,
		)
		return orderdom.Request{}, &common.PartialCheckoutError{
			RequestID: id,
			Err:       classifyDeadline("checkout_usecase: clear cart", err),
		}
	}

	return req, nil
}

func (uc *CheckoutUsecase) notify(ctx context.Context, email string, req orderdom.Request) {
	if uc.sender == nil {
		return
	}
	to := strings.TrimSpace(email)
	if to == "" {
		return
	}
	if err := uc.sender.SendBookingConfirmation(ctx, to, req); err != nil {
		log.Printf("[checkout_uc] WARN: confirmation mail failed requestId=%s err=%v", req.ID, err)
	}
}

func (uc *CheckoutUsecase) archive(ctx context.Context, req orderdom.Request) {
	if uc.archiver == nil {
		return
	}
	if err := uc.archiver.Archive(ctx, req); err != nil {
		log.Printf("[checkout_uc] WARN: request archive failed requestId=%s err=%v", req.ID, err)
	}
}
