// pkg/reconciler/wishlist.go
package reconciler

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"saidify/internal/domain/wishlist"
)

// WishlistReconciler is the set-membership sibling of CartReconciler:
// same two-tier resolution, same optimistic-then-reconciled mutations,
// but identity is productId alone and the only mutation is a toggle.
//
// Membership tests are O(1) via a productId index; the reference
// behavior scanned linearly but nothing depends on that.
//
// Not safe for concurrent use (single UI event loop, one instance per
// session).
type WishlistReconciler struct {
	store  LocalStore
	remote WishlistRemote

	tier    Tier
	entries []wishlist.Entry
	index   map[string]bool
}

// NewWishlistReconciler wires the two storage ports. remote may be nil;
// Init then always resolves to Guest.
func NewWishlistReconciler(store LocalStore, remote WishlistRemote) *WishlistReconciler {
	return &WishlistReconciler{
		store:   store,
		remote:  remote,
		tier:    TierUnresolved,
		entries: []wishlist.Entry{},
		index:   map[string]bool{},
	}
}

// Init resolves the storage tier once, mirroring CartReconciler.Init.
func (r *WishlistReconciler) Init(ctx context.Context) error {
	if r.tier != TierUnresolved {
		log.Printf("[reconciler.wishlist] init skipped: tier already %s", r.tier)
		return nil
	}

	if r.remote != nil {
		entries, err := r.remote.FetchWishlist(ctx)
		if err == nil {
			r.tier = TierAuthenticated
			r.adopt(entries)
			return nil
		}
		if err == ErrUnauthorized {
			log.Printf("[reconciler.wishlist] init: no identity, falling back to guest tier")
		} else {
			log.Printf("[reconciler.wishlist] init: remote fetch failed: %v (guest tier)", err)
		}
	}

	r.tier = TierGuest
	r.adopt(r.loadLocal())
	return nil
}

// Tier returns the resolved tier.
func (r *WishlistReconciler) Tier() Tier { return r.tier }

// Entries returns a copy of the current set.
func (r *WishlistReconciler) Entries() []wishlist.Entry {
	out := make([]wishlist.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// IsInWishlist reports membership for productID.
func (r *WishlistReconciler) IsInWishlist(productID string) bool {
	return r.index[strings.TrimSpace(productID)]
}

// Toggle flips membership for entry.ProductID: present -> removed,
// absent -> added. The local flip is applied first; in Authenticated
// tier a single remote toggle keyed by productId follows (the server
// decides add vs. remove), with a snapshot rollback on failure. In
// Guest tier the full set is persisted after every toggle.
func (r *WishlistReconciler) Toggle(ctx context.Context, entry wishlist.Entry) error {
	if r.tier == TierUnresolved {
		return ErrNotInitialized
	}
	pid := strings.TrimSpace(entry.ProductID)
	if pid == "" {
		return wishlist.ErrInvalidWishlist
	}
	entry.ProductID = pid

	snapshot := r.Entries()

	if r.index[pid] {
		kept := make([]wishlist.Entry, 0, len(r.entries))
		for _, e := range r.entries {
			if e.ProductID != pid {
				kept = append(kept, e)
			}
		}
		r.adopt(kept)
	} else {
		r.adopt(append(r.entries, entry))
	}

	if r.tier == TierAuthenticated {
		if _, err := r.remote.Toggle(ctx, entry); err != nil {
			log.Printf("[reconciler.wishlist] toggle: remote sync failed: %v (rolled back)", err)
			r.adopt(snapshot)
			return err
		}
		return nil
	}
	return r.persistLocal()
}

// ----------------------------
// internals
// ----------------------------

// adopt replaces the set and rebuilds the membership index.
func (r *WishlistReconciler) adopt(entries []wishlist.Entry) {
	if entries == nil {
		entries = []wishlist.Entry{}
	}
	r.entries = entries
	r.index = make(map[string]bool, len(entries))
	for _, e := range entries {
		r.index[e.ProductID] = true
	}
}

func (r *WishlistReconciler) loadLocal() []wishlist.Entry {
	if r.store == nil {
		return []wishlist.Entry{}
	}
	b, ok, err := r.store.Get(LocalWishlistKey)
	if err != nil {
		log.Printf("[reconciler.wishlist] local read failed: %v (starting empty)", err)
		return []wishlist.Entry{}
	}
	if !ok {
		return []wishlist.Entry{}
	}
	var entries []wishlist.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		log.Printf("[reconciler.wishlist] corrupt local wishlist: %v (starting empty)", err)
		return []wishlist.Entry{}
	}
	return entries
}

func (r *WishlistReconciler) persistLocal() error {
	if r.store == nil {
		return nil
	}
	b, err := json.Marshal(r.entries)
	if err != nil {
		return err
	}
	if err := r.store.Set(LocalWishlistKey, b); err != nil {
		log.Printf("[reconciler.wishlist] local persist failed: %v", err)
		return err
	}
	return nil
}
