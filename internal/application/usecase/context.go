// internal/application/usecase/context.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"houseit/internal/domain/common"
)

// opTimeout bounds every repository call. The store never held clients
// hostage longer than this; past the deadline the failure surfaces as
// store unavailability.
const opTimeout = 10 * time.Second

func withOpTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// classifyDeadline folds a context deadline into the taxonomy so
// callers see one store-unavailable shape for all transport trouble.
func classifyDeadline(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, common.ErrStoreUnavailable) {
		return fmt.Errorf("%s: %w: %v", op, common.ErrStoreUnavailable, err)
	}
	return err
}

// Read retry policy: reads may retry a couple of times with a linear
// pause; mutations and the create-then-clear sequence never retry (a
// retried create could duplicate a booking).
const (
	readAttempts = 3
	readBackoff  = 250 * time.Millisecond
)

func retryRead(ctx context.Context, fn func(context.Context) error) error {
	var err error
	for attempt := 1; attempt <= readAttempts; attempt++ {
		opCtx, cancel := withOpTimeout(ctx)
		err = fn(opCtx)
		cancel()
		if err == nil || !errors.Is(err, common.ErrStoreUnavailable) {
			return err
		}
		if attempt == readAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * readBackoff):
		}
	}
	return err
}
