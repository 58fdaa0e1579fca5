// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "saidify/internal/domain/cart"
)

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
// - collection: carts
// - docId: user uid (docId is the source of truth)
// - fields: lines, createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on "expiresAt".
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("carts")
}

// GetByUserID returns (nil, nil) if not found (nil policy).
func (r *CartRepositoryFS) GetByUserID(ctx context.Context, userID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("cart_repository_fs: userID is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var c cartdom.Cart
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	// docId is the source of truth even when the stored doc lacks an id field
	c.ID = uid
	if c.Lines == nil {
		c.Lines = []cartdom.Line{}
	}
	return &c, nil
}

// Upsert saves the cart by docId = cart.ID (= user uid).
func (r *CartRepositoryFS) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("cart_repository_fs: cart is nil")
	}

	uid := strings.TrimSpace(c.ID)
	if uid == "" {
		return errors.New("cart_repository_fs: Upsert requires cart.ID (= user uid) as docId")
	}

	// Overwrite full doc (simple & predictable).
	_, err := r.col().Doc(uid).Set(ctx, c)
	return err
}

func (r *CartRepositoryFS) DeleteByUserID(ctx context.Context, userID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("cart_repository_fs: userID is empty")
	}

	_, err := r.col().Doc(uid).Delete(ctx)
	return err
}
