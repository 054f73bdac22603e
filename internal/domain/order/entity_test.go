package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"houseit/internal/domain/cart"
)

func snapshotFixture() []ItemSnapshot {
	return []ItemSnapshot{
		{ID: "1", Name: "Outlet Installation", Price: 45, Quantity: 1},
		{ID: "2", Name: "Light Fixture Installation", Price: 65, Quantity: 2},
	}
}

func TestNew_VerifiesTotal(t *testing.T) {
	items := snapshotFixture()

	req, err := New("uid-1", items, 175, "co-1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, req.Status)
	assert.Equal(t, "uid-1", req.UserID)
	assert.Equal(t, "co-1", req.CheckoutID)
	assert.Empty(t, req.ID)
	assert.True(t, req.CreatedAt.IsZero())

	_, err = New("uid-1", items, 180, "co-1")
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestNew_TotalWithinEpsilon(t *testing.T) {
	items := []ItemSnapshot{{ID: "1", Name: "a", Price: 0.1, Quantity: 3}}
	// 0.1*3 is 0.30000000000000004; a two-decimal client total must pass
	_, err := New("uid-1", items, 0.30, "co")
	assert.NoError(t, err)
}

func TestNew_Rejections(t *testing.T) {
	items := snapshotFixture()

	_, err := New("  ", items, 175, "co")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = New("uid-1", nil, 0, "co")
	assert.ErrorIs(t, err, ErrEmptyItems)

	_, err = New("uid-1", []ItemSnapshot{{ID: "1", Name: "x", Price: 5, Quantity: 0}}, 0, "co")
	assert.ErrorIs(t, err, ErrInvalidItems)

	_, err = New("uid-1", []ItemSnapshot{{ID: "", Name: "x", Price: 5, Quantity: 1}}, 5, "co")
	assert.ErrorIs(t, err, ErrInvalidItems)
}

func TestSnapshotItems_IndependentOfCart(t *testing.T) {
	live := []cart.Item{{ID: "1", Name: "Leak Repair", Price: 85, Quantity: 1}}
	snaps := SnapshotItems(live)
	require.Len(t, snaps, 1)

	live[0].Quantity = 9
	live[0].Price = 1

	assert.Equal(t, 1, snaps[0].Quantity)
	assert.InDelta(t, 85.0, snaps[0].Price, 1e-9)
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusPending, ParseStatus(""))
	assert.Equal(t, StatusPending, ParseStatus("bogus"))
	assert.Equal(t, StatusPending, ParseStatus("PENDING"))
	assert.Equal(t, StatusInProgress, ParseStatus(" in_progress "))
	assert.Equal(t, StatusCompleted, ParseStatus("completed"))
}

func TestTransition_ForwardOnly(t *testing.T) {
	r := Request{Status: StatusPending}

	require.NoError(t, r.Transition(StatusInProgress))
	assert.Equal(t, StatusInProgress, r.Status)

	require.NoError(t, r.Transition(StatusCompleted))
	assert.Equal(t, StatusCompleted, r.Status)

	assert.ErrorIs(t, r.Transition(StatusPending), ErrStatusBackwards)
	assert.Equal(t, StatusCompleted, r.Status)

	// same-state transition is a no-op
	assert.NoError(t, r.Transition(StatusCompleted))

	assert.ErrorIs(t, r.Transition(Status("weird")), ErrInvalidStatus)
}

func TestTransition_NoSkipping(t *testing.T) {
	r := Request{Status: StatusPending}
	assert.ErrorIs(t, r.Transition(StatusCompleted), ErrStatusBackwards)
	assert.Equal(t, StatusPending, r.Status)
}

func TestSortMostRecentFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rs := []Request{
		{ID: "a", CreatedAt: base},
		{ID: "legacy-1"},
		{ID: "c", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "legacy-2"},
		{ID: "b", CreatedAt: base.Add(time.Hour)},
	}

	SortMostRecentFirst(rs)

	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	// newest first, undated entries last, ids descending within ties
	assert.Equal(t, []string{"c", "b", "a", "legacy-2", "legacy-1"}, ids)
}

func TestSortMostRecentFirst_TiebreakByID(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rs := []Request{
		{ID: "aaa", CreatedAt: at},
		{ID: "zzz", CreatedAt: at},
		{ID: "mmm", CreatedAt: at},
	}
	SortMostRecentFirst(rs)
	assert.Equal(t, "zzz", rs[0].ID)
	assert.Equal(t, "mmm", rs[1].ID)
	assert.Equal(t, "aaa", rs[2].ID)
}
