// internal/adapters/out/firestore/wishlist_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	wldom "saidify/internal/domain/wishlist"
)

// WishlistRepositoryFS implements wishlist.Repository using Firestore.
//
// Collection design:
// - collection: wishlists
// - docId: user uid
type WishlistRepositoryFS struct {
	Client *firestore.Client
}

func NewWishlistRepositoryFS(client *firestore.Client) *WishlistRepositoryFS {
	return &WishlistRepositoryFS{Client: client}
}

func (r *WishlistRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("wishlists")
}

// GetByUserID returns (nil, nil) if not found (nil policy).
func (r *WishlistRepositoryFS) GetByUserID(ctx context.Context, userID string) (*wldom.Wishlist, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("wishlist_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("wishlist_repository_fs: userID is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var w wldom.Wishlist
	if err := snap.DataTo(&w); err != nil {
		return nil, err
	}
	w.ID = uid
	if w.Entries == nil {
		w.Entries = []wldom.Entry{}
	}
	return &w, nil
}

func (r *WishlistRepositoryFS) Upsert(ctx context.Context, w *wldom.Wishlist) error {
	if r == nil || r.Client == nil {
		return errors.New("wishlist_repository_fs: firestore client is nil")
	}
	if w == nil {
		return errors.New("wishlist_repository_fs: wishlist is nil")
	}

	uid := strings.TrimSpace(w.ID)
	if uid == "" {
		return errors.New("wishlist_repository_fs: Upsert requires w.ID (= user uid) as docId")
	}

	_, err := r.col().Doc(uid).Set(ctx, w)
	return err
}

func (r *WishlistRepositoryFS) DeleteByUserID(ctx context.Context, userID string) error {
	if r == nil || r.Client == nil {
		return errors.New("wishlist_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("wishlist_repository_fs: userID is empty")
	}

	_, err := r.col().Doc(uid).Delete(ctx)
	return err
}
