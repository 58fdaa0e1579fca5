// internal/adapters/out/firestore/blankProduct_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	blankdom "saidify/internal/domain/blankproduct"
)

// BlankProductRepositoryFS implements blankproduct.Repository using Firestore.
//
// Collection design:
// - collection: blankProducts
// - docId: blank id
type BlankProductRepositoryFS struct {
	Client *firestore.Client
}

func NewBlankProductRepositoryFS(client *firestore.Client) *BlankProductRepositoryFS {
	return &BlankProductRepositoryFS{Client: client}
}

func (r *BlankProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("blankProducts")
}

func (r *BlankProductRepositoryFS) GetByID(ctx context.Context, id string) (*blankdom.BlankProduct, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("blankProduct_repository_fs: firestore client is nil")
	}
	bid := strings.TrimSpace(id)
	if bid == "" {
		return nil, errors.New("blankProduct_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(bid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var b blankdom.BlankProduct
	if err := snap.DataTo(&b); err != nil {
		return nil, err
	}
	b.ID = bid
	return &b, nil
}

func (r *BlankProductRepositoryFS) List(ctx context.Context) ([]*blankdom.BlankProduct, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("blankProduct_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	out := []*blankdom.BlankProduct{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var b blankdom.BlankProduct
		if err := snap.DataTo(&b); err != nil {
			return nil, err
		}
		b.ID = snap.Ref.ID
		out = append(out, &b)
	}
	return out, nil
}

func (r *BlankProductRepositoryFS) Save(ctx context.Context, b *blankdom.BlankProduct) error {
	if r == nil || r.Client == nil {
		return errors.New("blankProduct_repository_fs: firestore client is nil")
	}
	if b == nil {
		return errors.New("blankProduct_repository_fs: blank is nil")
	}
	bid := strings.TrimSpace(b.ID)
	if bid == "" {
		return errors.New("blankProduct_repository_fs: Save requires b.ID as docId")
	}

	_, err := r.col().Doc(bid).Set(ctx, b)
	return err
}

func (r *BlankProductRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("blankProduct_repository_fs: firestore client is nil")
	}
	bid := strings.TrimSpace(id)
	if bid == "" {
		return errors.New("blankProduct_repository_fs: id is empty")
	}

	_, err := r.col().Doc(bid).Delete(ctx)
	return err
}
