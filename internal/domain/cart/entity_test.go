package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_DefaultsQuantityToOne(t *testing.T) {
	it, err := NewItem("1", "Outlet Installation", 45, 0, "Install new power outlets")
	require.NoError(t, err)
	assert.Equal(t, 1, it.Quantity)

	it, err = NewItem("1", "Outlet Installation", 45, -3, "")
	require.NoError(t, err)
	assert.Equal(t, 1, it.Quantity)
}

func TestNewItem_TrimsFields(t *testing.T) {
	it, err := NewItem("  1 ", "  Leak Repair ", 85, 2, "  Fix leaking pipes ")
	require.NoError(t, err)
	assert.Equal(t, "1", it.ID)
	assert.Equal(t, "Leak Repair", it.Name)
	assert.Equal(t, "Fix leaking pipes", it.Description)
	assert.Equal(t, 2, it.Quantity)
}

func TestItemValidate(t *testing.T) {
	valid := Item{ID: "1", Name: "Leak Repair", Price: 85, Quantity: 1}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name string
		item Item
	}{
		{"empty id", Item{Name: "x", Price: 1, Quantity: 1}},
		{"blank id", Item{ID: "  ", Name: "x", Price: 1, Quantity: 1}},
		{"empty name", Item{ID: "1", Price: 1, Quantity: 1}},
		{"negative price", Item{ID: "1", Name: "x", Price: -0.01, Quantity: 1}},
		{"nan price", Item{ID: "1", Name: "x", Price: math.NaN(), Quantity: 1}},
		{"inf price", Item{ID: "1", Name: "x", Price: math.Inf(1), Quantity: 1}},
		{"zero quantity", Item{ID: "1", Name: "x", Price: 1, Quantity: 0}},
		{"negative quantity", Item{ID: "1", Name: "x", Price: 1, Quantity: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.item.Validate(), ErrInvalidItem)
		})
	}
}

func TestItemValidate_ZeroPriceAllowed(t *testing.T) {
	it := Item{ID: "promo", Name: "Free Inspection", Price: 0, Quantity: 1}
	assert.NoError(t, it.Validate())
}

func TestTotal(t *testing.T) {
	items := []Item{
		{ID: "1", Name: "Outlet Installation", Price: 45, Quantity: 1},
		{ID: "2", Name: "Light Fixture Installation", Price: 65, Quantity: 2},
	}
	assert.InDelta(t, 175.0, Total(items), 1e-9)
	assert.Zero(t, Total(nil))
}

func TestNormalize_MergesDuplicatesAndSorts(t *testing.T) {
	items := []Item{
		{ID: "2", Name: "Light Fixture Installation", Price: 65, Quantity: 1},
		{ID: "1", Name: "Outlet Installation", Price: 45, Quantity: 1},
		{ID: "2", Name: "Light Fixture Installation", Price: 65, Quantity: 2},
	}

	out := Normalize(items)
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "2", out[1].ID)
	assert.Equal(t, 3, out[1].Quantity)
}

func TestNormalize_DropsInvalidEntries(t *testing.T) {
	items := []Item{
		{ID: "", Name: "ghost", Price: 1, Quantity: 1},
		{ID: "1", Name: "Leak Repair", Price: 85, Quantity: 0},
		{ID: "2", Name: "Drain Cleaning", Price: 120, Quantity: 1},
	}
	out := Normalize(items)
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}
