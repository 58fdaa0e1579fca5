package order

import (
	"testing"
	"time"

	"saidify/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewSnapshotsAndTotals(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "p1", Title: "Tee", Price: "99.50 MAD", Quantity: 2},
		{ProductID: "p1", Title: "Tee", Price: "99.50 MAD", Quantity: 1}, // merged
		{ProductID: "p2", Title: "Pin", Price: "$5", Quantity: 1},
	}

	o, err := New("o1", "u1", lines, Shipping{FullName: "A B", Address: "1 rue"}, t0)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	require.Len(t, o.Lines, 2)
	assert.InDelta(t, 99.50*3+5, o.Subtotal, 0.001)
}

func TestNewRejectsEmptyLines(t *testing.T) {
	_, err := New("o1", "u1", nil, Shipping{FullName: "A", Address: "x"}, t0)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	// lines that normalize to nothing are also empty
	_, err = New("o1", "u1", []cart.Line{{ProductID: "", Quantity: 1}}, Shipping{FullName: "A", Address: "x"}, t0)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestNewRequiresShippingNameAndAddress(t *testing.T) {
	lines := []cart.Line{{ProductID: "p1", Title: "Tee", Price: "99 MAD", Quantity: 1}}

	_, err := New("o1", "u1", lines, Shipping{Address: "x"}, t0)
	assert.ErrorIs(t, err, ErrInvalidShipping)

	_, err = New("o1", "u1", lines, Shipping{FullName: "A"}, t0)
	assert.ErrorIs(t, err, ErrInvalidShipping)
}

func TestSetStatus(t *testing.T) {
	lines := []cart.Line{{ProductID: "p1", Title: "Tee", Price: "99 MAD", Quantity: 1}}
	o, err := New("o1", "u1", lines, Shipping{FullName: "A", Address: "x"}, t0)
	require.NoError(t, err)

	later := t0.Add(time.Hour)
	require.NoError(t, o.SetStatus(StatusShipped, later))
	assert.Equal(t, StatusShipped, o.Status)
	assert.Equal(t, later, o.UpdatedAt)

	assert.ErrorIs(t, o.SetStatus(Status("lost"), later), ErrInvalidStatus)
}
