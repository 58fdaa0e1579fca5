// internal/domain/wishlist/repository_port.go
package wishlist

import "context"

// Repository is a persistence port for Wishlist.
//
// Storage (Firestore):
// - collection: wishlists
// - docId: user uid
type Repository interface {
	// GetByUserID returns the wishlist for the user, or (nil, nil) when
	// no wishlist document exists yet.
	GetByUserID(ctx context.Context, userID string) (*Wishlist, error)

	// Upsert saves the wishlist (create or update) under docId = w.ID.
	Upsert(ctx context.Context, w *Wishlist) error

	// DeleteByUserID deletes the wishlist for the user.
	DeleteByUserID(ctx context.Context, userID string) error
}
