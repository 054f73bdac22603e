package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"houseit/internal/domain/common"
)

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr("op", nil))

	err := mapErr("op", status.Error(codes.NotFound, "missing"))
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = mapErr("op", status.Error(codes.InvalidArgument, "bad field"))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	err = mapErr("op", status.Error(codes.FailedPrecondition, "tx conflict"))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	for _, code := range []codes.Code{
		codes.Unavailable,
		codes.DeadlineExceeded,
		codes.PermissionDenied,
		codes.ResourceExhausted,
		codes.Internal,
		codes.Unknown,
	} {
		err = mapErr("op", status.Error(code, "transport"))
		assert.ErrorIs(t, err, common.ErrStoreUnavailable, "code %v", code)
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(status.Error(codes.NotFound, "x")))
	assert.False(t, isNotFound(status.Error(codes.Unavailable, "x")))
	assert.False(t, isNotFound(nil))
}

func TestTolerantReaders(t *testing.T) {
	assert.Equal(t, "abc", asString("abc"))
	assert.Equal(t, "", asString(42))
	assert.Equal(t, "", asString(nil))

	assert.InDelta(t, 45.0, asFloat(float64(45)), 1e-9)
	assert.InDelta(t, 45.0, asFloat(int64(45)), 1e-9)
	assert.InDelta(t, 45.0, asFloat(45), 1e-9)
	assert.Zero(t, asFloat("not a number"))

	assert.Equal(t, 2, asInt(int64(2)))
	assert.Equal(t, 2, asInt(float64(2)))
	assert.Zero(t, asInt(nil))

	now := time.Now()
	got, ok := asTime(now)
	assert.True(t, ok)
	assert.Equal(t, now.UTC(), got)

	_, ok = asTime(time.Time{})
	assert.False(t, ok)
	_, ok = asTime("2026-08-01")
	assert.False(t, ok)
}
