package wishlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestToggleIsInvolution(t *testing.T) {
	w, err := New("u1", nil, t0)
	require.NoError(t, err)

	e := Entry{ProductID: "p1", Title: "Tee", Price: "99 MAD"}

	member, err := w.Toggle(e, t0)
	require.NoError(t, err)
	assert.True(t, member)
	assert.True(t, w.Contains("p1"))

	member, err = w.Toggle(e, t0)
	require.NoError(t, err)
	assert.False(t, member)
	assert.False(t, w.Contains("p1"))
	assert.Empty(t, w.Entries)
}

func TestToggleKeyedByProductIDOnly(t *testing.T) {
	w, err := New("u1", nil, t0)
	require.NoError(t, err)

	_, err = w.Toggle(Entry{ProductID: "p1", Title: "Tee"}, t0)
	require.NoError(t, err)

	// same product with different display payload removes, never duplicates
	member, err := w.Toggle(Entry{ProductID: "p1", Title: "Renamed Tee"}, t0)
	require.NoError(t, err)
	assert.False(t, member)
	assert.Empty(t, w.Entries)
}

func TestToggleRejectsEmptyProductID(t *testing.T) {
	w, err := New("u1", nil, t0)
	require.NoError(t, err)

	_, err = w.Toggle(Entry{ProductID: "  "}, t0)
	assert.ErrorIs(t, err, ErrInvalidWishlist)
}

func TestNewDedupesEntries(t *testing.T) {
	w, err := New("u1", []Entry{
		{ProductID: "p1", Title: "A"},
		{ProductID: "p1", Title: "B"},
		{ProductID: "p2"},
	}, t0)
	require.NoError(t, err)
	assert.Len(t, w.Entries, 2)
}
