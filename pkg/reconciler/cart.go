// pkg/reconciler/cart.go
package reconciler

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"saidify/internal/domain/cart"
	"saidify/internal/domain/pricing"
)

// CartReconciler is the client-held cart component. It decides whether
// mutations target local storage (Guest tier) or the remote store
// (Authenticated tier) and keeps the two in a defined relationship:
// exactly one tier is ever written for a given session.
//
// Every remote-synced mutation is optimistic: local state changes first,
// a failed remote call replays the pre-mutation snapshot. Remote
// failures are logged, never retried.
//
// Construct one instance per session and call Init before any mutation.
// Not safe for concurrent use: per the execution model all calls come
// from a single UI event loop.
type CartReconciler struct {
	store  LocalStore
	remote CartRemote

	tier  Tier
	lines []cart.Line
}

// NewCartReconciler wires the two storage ports. remote may be nil for a
// build with no backend configured; Init then always resolves to Guest.
func NewCartReconciler(store LocalStore, remote CartRemote) *CartReconciler {
	return &CartReconciler{
		store:  store,
		remote: remote,
		tier:   TierUnresolved,
		lines:  []cart.Line{},
	}
}

// Init resolves the storage tier, once per session:
//  1. remote fetch succeeds            -> Authenticated, adopt server list
//  2. fetch fails (401 or any error)   -> Guest, adopt parseable local list
//  3. nothing usable                   -> Guest, empty
//
// Calling Init again after the tier resolved is a no-op: the tier is
// fixed for the session lifetime (a reload constructs a new reconciler).
func (r *CartReconciler) Init(ctx context.Context) error {
	if r.tier != TierUnresolved {
		log.Printf("[reconciler.cart] init skipped: tier already %s", r.tier)
		return nil
	}

	if r.remote != nil {
		lines, err := r.remote.FetchCart(ctx)
		if err == nil {
			r.tier = TierAuthenticated
			// adopt the returned list verbatim
			if lines == nil {
				lines = []cart.Line{}
			}
			r.lines = lines
			return nil
		}
		if err == ErrUnauthorized {
			log.Printf("[reconciler.cart] init: no identity, falling back to guest tier")
		} else {
			log.Printf("[reconciler.cart] init: remote fetch failed: %v (guest tier)", err)
		}
	}

	r.tier = TierGuest
	r.lines = r.loadLocal()
	return nil
}

// Tier returns the resolved tier.
func (r *CartReconciler) Tier() Tier { return r.tier }

// Lines returns a copy of the current line list.
func (r *CartReconciler) Lines() []cart.Line {
	out := make([]cart.Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// TotalItems is the sum of quantities across lines.
func (r *CartReconciler) TotalItems() int {
	total := 0
	for _, l := range r.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal sums parsed price x quantity. Prices arrive as formatted
// currency strings and are stripped down to digits and the decimal point.
func (r *CartReconciler) Subtotal() float64 {
	sum := 0.0
	for _, l := range r.lines {
		sum += pricing.ParseAmount(l.Price) * float64(l.Quantity)
	}
	return sum
}

// AddLine merges line into the cart by identity key
// (productId, selectedSize, selectedColor): an existing line gets its
// quantity incremented by line.Quantity, otherwise line is appended.
func (r *CartReconciler) AddLine(ctx context.Context, line cart.Line) error {
	if r.tier == TierUnresolved {
		return ErrNotInitialized
	}
	line.ProductID = strings.TrimSpace(line.ProductID)
	if line.ProductID == "" || line.Quantity < 1 {
		return cart.ErrInvalidLine
	}

	snapshot := r.Lines()

	merged := false
	for i := range r.lines {
		if r.lines[i].Key() == line.Key() {
			r.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		r.lines = append(r.lines, line)
	}

	if r.tier == TierAuthenticated {
		if _, err := r.remote.AddLine(ctx, line); err != nil {
			r.rollback(snapshot, "add", err)
			return err
		}
		return nil
	}
	return r.persistLocal()
}

// RemoveLine removes ALL lines matching productID, regardless of
// size/color. Removal keys by productId alone while add/update key by
// the full identity tuple; the asymmetry is deliberate (see DESIGN.md).
func (r *CartReconciler) RemoveLine(ctx context.Context, productID string) error {
	if r.tier == TierUnresolved {
		return ErrNotInitialized
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return cart.ErrInvalidLine
	}

	snapshot := r.Lines()

	kept := make([]cart.Line, 0, len(r.lines))
	for _, l := range r.lines {
		if l.ProductID != pid {
			kept = append(kept, l)
		}
	}
	r.lines = kept

	if r.tier == TierAuthenticated {
		if _, err := r.remote.Replace(ctx, r.Lines()); err != nil {
			r.rollback(snapshot, "remove", err)
			return err
		}
		return nil
	}
	return r.persistLocal()
}

// UpdateQuantity sets the quantity for every line matching productID.
// Quantities below 1 never change the cart: the floor is 1 and a
// decrement past it is a no-op, not a removal.
func (r *CartReconciler) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if r.tier == TierUnresolved {
		return ErrNotInitialized
	}
	if quantity < 1 {
		return nil
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return cart.ErrInvalidLine
	}

	snapshot := r.Lines()

	for i := range r.lines {
		if r.lines[i].ProductID == pid {
			r.lines[i].Quantity = quantity
		}
	}

	if r.tier == TierAuthenticated {
		if _, err := r.remote.Replace(ctx, r.Lines()); err != nil {
			r.rollback(snapshot, "update", err)
			return err
		}
		return nil
	}
	return r.persistLocal()
}

// Clear empties the cart. The remote push is fire-and-forget: a failure
// is logged but the local clear stands (no rollback). In Guest tier the
// local storage key is deleted outright.
func (r *CartReconciler) Clear(ctx context.Context) error {
	if r.tier == TierUnresolved {
		return ErrNotInitialized
	}

	r.lines = []cart.Line{}

	if r.tier == TierAuthenticated {
		if _, err := r.remote.Replace(ctx, []cart.Line{}); err != nil {
			log.Printf("[reconciler.cart] clear: remote push failed: %v (ignored)", err)
		}
		return nil
	}
	if r.store != nil {
		if err := r.store.Delete(LocalCartKey); err != nil {
			log.Printf("[reconciler.cart] clear: local delete failed: %v", err)
			return err
		}
	}
	return nil
}

// ----------------------------
// internals
// ----------------------------

func (r *CartReconciler) rollback(snapshot []cart.Line, op string, cause error) {
	log.Printf("[reconciler.cart] %s: remote sync failed: %v (rolled back)", op, cause)
	r.lines = snapshot
}

func (r *CartReconciler) loadLocal() []cart.Line {
	if r.store == nil {
		return []cart.Line{}
	}
	b, ok, err := r.store.Get(LocalCartKey)
	if err != nil {
		log.Printf("[reconciler.cart] local read failed: %v (starting empty)", err)
		return []cart.Line{}
	}
	if !ok {
		return []cart.Line{}
	}
	var lines []cart.Line
	if err := json.Unmarshal(b, &lines); err != nil {
		log.Printf("[reconciler.cart] corrupt local cart: %v (starting empty)", err)
		return []cart.Line{}
	}
	if lines == nil {
		lines = []cart.Line{}
	}
	return lines
}

// persistLocal writes the full list synchronously, Guest tier only.
func (r *CartReconciler) persistLocal() error {
	if r.store == nil {
		return nil
	}
	b, err := json.Marshal(r.lines)
	if err != nil {
		return err
	}
	if err := r.store.Set(LocalCartKey, b); err != nil {
		log.Printf("[reconciler.cart] local persist failed: %v", err)
		return err
	}
	return nil
}
