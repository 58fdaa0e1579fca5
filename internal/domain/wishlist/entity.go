// internal/domain/wishlist/entity.go
package wishlist

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidWishlist = errors.New("wishlist: invalid")

// Entry is one saved product reference.
// Identity is productId alone; a wishlist holds at most one entry per product.
type Entry struct {
	ProductID string `json:"productId" firestore:"productId"`
	Title     string `json:"title" firestore:"title"`
	Price     string `json:"price" firestore:"price"`
	Image     string `json:"image" firestore:"image"`
	Category  string `json:"category" firestore:"category"`
}

// Wishlist is a wishlist document.
//   - docId = user uid (Firestore)
//   - Entries has set semantics: presence is boolean per productId.
type Wishlist struct {
	ID        string    `json:"id" firestore:"id"`
	Entries   []Entry   `json:"entries" firestore:"entries"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New creates a wishlist doc. entries can be nil.
func New(id string, entries []Entry, now time.Time) (*Wishlist, error) {
	w := &Wishlist{
		ID:        strings.TrimSpace(id),
		Entries:   dedupe(entries),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Toggle flips membership for entry.ProductID.
// If the product is present it is removed (entry payload ignored);
// otherwise entry is appended. Returns true when the product is a
// member after the call.
func (w *Wishlist) Toggle(entry Entry, now time.Time) (bool, error) {
	if w == nil {
		return false, ErrInvalidWishlist
	}
	pid := strings.TrimSpace(entry.ProductID)
	if pid == "" {
		return false, ErrInvalidWishlist
	}
	entry.ProductID = pid

	idx := -1
	for i := range w.Entries {
		if w.Entries[i].ProductID == pid {
			idx = i
			break
		}
	}

	member := false
	if idx >= 0 {
		w.Entries = append(w.Entries[:idx], w.Entries[idx+1:]...)
	} else {
		w.Entries = append(w.Entries, entry)
		member = true
	}

	w.UpdatedAt = now
	return member, w.validate()
}

// Contains reports membership for productID.
func (w *Wishlist) Contains(productID string) bool {
	if w == nil {
		return false
	}
	pid := strings.TrimSpace(productID)
	for _, e := range w.Entries {
		if e.ProductID == pid {
			return true
		}
	}
	return false
}

func (w *Wishlist) validate() error {
	if w == nil {
		return ErrInvalidWishlist
	}
	if strings.TrimSpace(w.ID) == "" {
		return ErrInvalidWishlist
	}
	if w.CreatedAt.IsZero() || w.UpdatedAt.IsZero() {
		return ErrInvalidWishlist
	}
	for _, e := range w.Entries {
		if strings.TrimSpace(e.ProductID) == "" {
			return ErrInvalidWishlist
		}
	}
	return nil
}

func dedupe(src []Entry) []Entry {
	if len(src) == 0 {
		return []Entry{}
	}
	seen := map[string]bool{}
	out := make([]Entry, 0, len(src))
	for _, e := range src {
		pid := strings.TrimSpace(e.ProductID)
		if pid == "" || seen[pid] {
			continue
		}
		seen[pid] = true
		e.ProductID = pid
		out = append(out, e)
	}
	return out
}
