package reconciler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saidify/internal/domain/cart"
)

// fakeCartRemote records calls and can be told to fail.
type fakeCartRemote struct {
	lines []cart.Line

	fetchErr error
	failMut  bool

	addCalls     int
	replaceCalls int
}

func (f *fakeCartRemote) FetchCart(ctx context.Context) ([]cart.Line, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.lines, nil
}

func (f *fakeCartRemote) AddLine(ctx context.Context, line cart.Line) ([]cart.Line, error) {
	f.addCalls++
	if f.failMut {
		return nil, errors.New("boom")
	}
	f.lines = append(f.lines, line)
	return f.lines, nil
}

func (f *fakeCartRemote) Replace(ctx context.Context, lines []cart.Line) ([]cart.Line, error) {
	f.replaceCalls++
	if f.failMut {
		return nil, errors.New("boom")
	}
	f.lines = lines
	return f.lines, nil
}

// countingStore wraps MemStore and counts writes.
type countingStore struct {
	*MemStore
	sets    int
	deletes int
}

func newCountingStore() *countingStore {
	return &countingStore{MemStore: NewMemStore()}
}

func (s *countingStore) Set(key string, value []byte) error {
	s.sets++
	return s.MemStore.Set(key, value)
}

func (s *countingStore) Delete(key string) error {
	s.deletes++
	return s.MemStore.Delete(key)
}

func line(pid, size, color string, qty int) cart.Line {
	return cart.Line{
		ProductID:     pid,
		Title:         "tee " + pid,
		Price:         "99.00 MAD",
		Quantity:      qty,
		SelectedSize:  size,
		SelectedColor: color,
	}
}

func newGuestCart(t *testing.T, store LocalStore) *CartReconciler {
	t.Helper()
	r := NewCartReconciler(store, nil)
	require.NoError(t, r.Init(context.Background()))
	require.Equal(t, TierGuest, r.Tier())
	return r
}

func TestCartInit_AuthenticatedAdoptsRemoteList(t *testing.T) {
	remote := &fakeCartRemote{lines: []cart.Line{line("p1", "M", "", 2)}}
	r := NewCartReconciler(NewMemStore(), remote)

	require.NoError(t, r.Init(context.Background()))

	assert.Equal(t, TierAuthenticated, r.Tier())
	assert.Equal(t, remote.lines, r.Lines())
}

func TestCartInit_UnauthorizedFallsBackToLocal(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Set(LocalCartKey, []byte(`[{"productId":"p9","title":"x","price":"10","quantity":3}]`)))

	r := NewCartReconciler(store, &fakeCartRemote{fetchErr: ErrUnauthorized})
	require.NoError(t, r.Init(context.Background()))

	assert.Equal(t, TierGuest, r.Tier())
	require.Len(t, r.Lines(), 1)
	assert.Equal(t, "p9", r.Lines()[0].ProductID)
	assert.Equal(t, 3, r.Lines()[0].Quantity)
}

func TestCartInit_CorruptLocalStartsEmpty(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Set(LocalCartKey, []byte(`{oops`)))

	r := NewCartReconciler(store, nil)
	require.NoError(t, r.Init(context.Background()))

	assert.Equal(t, TierGuest, r.Tier())
	assert.Empty(t, r.Lines())
}

func TestCartInit_SecondCallIsNoop(t *testing.T) {
	remote := &fakeCartRemote{fetchErr: ErrUnauthorized}
	r := NewCartReconciler(NewMemStore(), remote)
	require.NoError(t, r.Init(context.Background()))
	require.Equal(t, TierGuest, r.Tier())

	// identity now resolvable, but the tier is fixed for the session
	remote.fetchErr = nil
	remote.lines = []cart.Line{line("p1", "", "", 1)}
	require.NoError(t, r.Init(context.Background()))
	assert.Equal(t, TierGuest, r.Tier())
	assert.Empty(t, r.Lines())
}

func TestCartMutation_BeforeInitRejected(t *testing.T) {
	r := NewCartReconciler(NewMemStore(), nil)
	assert.ErrorIs(t, r.AddLine(context.Background(), line("p1", "", "", 1)), ErrNotInitialized)
}

// Identity-key uniqueness: at most one line per (productId, size, color),
// with quantity equal to the sum of all quantities added under that key.
func TestCartAddLine_IdentityKeyUniqueness(t *testing.T) {
	r := newGuestCart(t, NewMemStore())
	ctx := context.Background()

	require.NoError(t, r.AddLine(ctx, line("p1", "M", "red", 1)))
	require.NoError(t, r.AddLine(ctx, line("p1", "M", "red", 2)))
	require.NoError(t, r.AddLine(ctx, line("p1", "L", "red", 1)))
	require.NoError(t, r.AddLine(ctx, line("p2", "M", "red", 4)))
	require.NoError(t, r.AddLine(ctx, line("p1", "M", "red", 3)))

	lines := r.Lines()
	require.Len(t, lines, 3)

	byKey := map[cart.Key]int{}
	for _, l := range lines {
		byKey[l.Key()] += l.Quantity
	}
	assert.Equal(t, 6, byKey[cart.Key{ProductID: "p1", Size: "M", Color: "red"}])
	assert.Equal(t, 1, byKey[cart.Key{ProductID: "p1", Size: "L", Color: "red"}])
	assert.Equal(t, 4, byKey[cart.Key{ProductID: "p2", Size: "M", Color: "red"}])
	assert.Equal(t, 11, r.TotalItems())
}

// Quantity floor: updateQuantity with q < 1 never changes items.
func TestCartUpdateQuantity_FloorIsNoop(t *testing.T) {
	r := newGuestCart(t, NewMemStore())
	ctx := context.Background()
	require.NoError(t, r.AddLine(ctx, line("p1", "M", "", 2)))

	before := r.Lines()
	require.NoError(t, r.UpdateQuantity(ctx, "p1", 0))
	require.NoError(t, r.UpdateQuantity(ctx, "p1", -5))
	assert.Equal(t, before, r.Lines())

	require.NoError(t, r.UpdateQuantity(ctx, "p1", 7))
	assert.Equal(t, 7, r.Lines()[0].Quantity)
}

// Tier exclusivity: Authenticated sessions never write local storage,
// Guest sessions never call the remote.
func TestCartTierExclusivity(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated never writes local", func(t *testing.T) {
		store := newCountingStore()
		remote := &fakeCartRemote{}
		r := NewCartReconciler(store, remote)
		require.NoError(t, r.Init(ctx))
		require.Equal(t, TierAuthenticated, r.Tier())

		require.NoError(t, r.AddLine(ctx, line("p1", "M", "", 1)))
		require.NoError(t, r.UpdateQuantity(ctx, "p1", 5))
		require.NoError(t, r.RemoveLine(ctx, "p1"))
		require.NoError(t, r.Clear(ctx))

		assert.Zero(t, store.sets)
		assert.Zero(t, store.deletes)
	})

	t.Run("guest never calls remote", func(t *testing.T) {
		store := newCountingStore()
		remote := &fakeCartRemote{fetchErr: ErrUnauthorized}
		r := NewCartReconciler(store, remote)
		require.NoError(t, r.Init(ctx))
		require.Equal(t, TierGuest, r.Tier())

		require.NoError(t, r.AddLine(ctx, line("p1", "M", "", 1)))
		require.NoError(t, r.UpdateQuantity(ctx, "p1", 5))
		require.NoError(t, r.RemoveLine(ctx, "p1"))

		assert.Zero(t, remote.addCalls)
		assert.Zero(t, remote.replaceCalls)
		assert.NotZero(t, store.sets)
	})
}

// Rollback on failure: items after a failed remote call equal items
// before the call.
func TestCartRollbackOnRemoteFailure(t *testing.T) {
	ctx := context.Background()
	remote := &fakeCartRemote{}
	r := NewCartReconciler(NewMemStore(), remote)
	require.NoError(t, r.Init(ctx))
	require.NoError(t, r.AddLine(ctx, line("p1", "M", "red", 2)))

	before := r.Lines()
	remote.failMut = true

	assert.Error(t, r.AddLine(ctx, line("p1", "M", "red", 1)))
	assert.Equal(t, before, r.Lines())

	assert.Error(t, r.RemoveLine(ctx, "p1"))
	assert.Equal(t, before, r.Lines())

	assert.Error(t, r.UpdateQuantity(ctx, "p1", 9))
	assert.Equal(t, before, r.Lines())
}

// Clear is fire-and-forget: a remote failure does not restore the lines.
func TestCartClear_RemoteFailureIgnored(t *testing.T) {
	ctx := context.Background()
	remote := &fakeCartRemote{}
	r := NewCartReconciler(NewMemStore(), remote)
	require.NoError(t, r.Init(ctx))
	require.NoError(t, r.AddLine(ctx, line("p1", "", "", 1)))

	remote.failMut = true
	require.NoError(t, r.Clear(ctx))
	assert.Empty(t, r.Lines())
}

func TestCartClear_GuestDeletesLocalKey(t *testing.T) {
	store := newCountingStore()
	r := newGuestCart(t, store)
	ctx := context.Background()
	require.NoError(t, r.AddLine(ctx, line("p1", "", "", 1)))

	require.NoError(t, r.Clear(ctx))
	assert.Empty(t, r.Lines())
	_, ok, err := store.Get(LocalCartKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Subtotal scenario from the pricing contract:
// "19.99 MAD" x2 + "$5.00" x1 = 44.98.
func TestCartSubtotal_FormattedPrices(t *testing.T) {
	r := newGuestCart(t, NewMemStore())
	ctx := context.Background()

	l1 := line("p1", "", "", 2)
	l1.Price = "19.99 MAD"
	l2 := line("p2", "", "", 1)
	l2.Price = "$5.00"
	require.NoError(t, r.AddLine(ctx, l1))
	require.NoError(t, r.AddLine(ctx, l2))

	assert.InDelta(t, 44.98, r.Subtotal(), 1e-9)
}

// Guest-tier persistence round-trip: a new reconciler over the same
// store reproduces the list.
func TestCartGuestPersistenceRoundTrip(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	r1 := newGuestCart(t, store)
	l := line("p42", "XL", "black", 3)
	require.NoError(t, r1.AddLine(ctx, l))

	r2 := newGuestCart(t, store)
	require.Len(t, r2.Lines(), 1)
	assert.Equal(t, l, r2.Lines()[0])
}

// Removal scope: removeLine keys by productId alone, so both size
// variants of the same product go away together.
func TestCartRemoveLine_RemovesAllVariants(t *testing.T) {
	r := newGuestCart(t, NewMemStore())
	ctx := context.Background()

	require.NoError(t, r.AddLine(ctx, line("7", "M", "", 1)))
	require.NoError(t, r.AddLine(ctx, line("7", "L", "", 1)))
	require.NoError(t, r.AddLine(ctx, line("8", "M", "", 1)))

	require.NoError(t, r.RemoveLine(ctx, "7"))

	lines := r.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "8", lines[0].ProductID)
}
