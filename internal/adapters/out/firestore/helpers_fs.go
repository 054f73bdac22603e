// internal/adapters/out/firestore/helpers_fs.go
package firestore

import (
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"houseit/internal/domain/common"
)

// mapErr classifies a Firestore/transport error into the shared
// taxonomy, keeping the cause in the chain.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", op, common.ErrNotFound)
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return fmt.Errorf("%s: %w: %v", op, common.ErrInvalidArgument, err)
	default:
		// Unavailable, DeadlineExceeded, ResourceExhausted,
		// PermissionDenied, Unauthenticated, Aborted, Internal,
		// Unknown, Canceled: all surface as store unavailability.
		return fmt.Errorf("%s: %w: %v", op, common.ErrStoreUnavailable, err)
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// Tolerant field readers for raw snapshot data. Older documents written
// by the mobile client carry numeric drift (int64 vs float64) and may
// miss fields entirely.

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asTime(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok && !t.IsZero() {
		return t.UTC(), true
	}
	return time.Time{}, false
}
