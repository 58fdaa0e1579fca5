// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is a persistence port for Cart.
//
// Storage (Firestore):
// - collection: carts
// - docId: user uid
// - fields: lines, createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on "expiresAt"; refreshed by domain touch().
type Repository interface {
	// GetByUserID returns the cart for the user, or (nil, nil) when no
	// cart document exists yet.
	GetByUserID(ctx context.Context, userID string) (*Cart, error)

	// Upsert saves the cart (create or update) under docId = cart.ID.
	Upsert(ctx context.Context, c *Cart) error

	// DeleteByUserID deletes the cart for the user (e.g. after checkout).
	DeleteByUserID(ctx context.Context, userID string) error
}
