// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	proddom "saidify/internal/domain/product"
)

// ProductRepositoryFS implements product.Repository using Firestore.
//
// Collection design:
// - collection: products
// - docId: product id
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("products")
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (*proddom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	pid := strings.TrimSpace(id)
	if pid == "" {
		return nil, errors.New("product_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(pid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var p proddom.Product
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = pid
	return &p, nil
}

func (r *ProductRepositoryFS) List(ctx context.Context) ([]*proddom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	return r.collect(r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx))
}

func (r *ProductRepositoryFS) ListByCategory(ctx context.Context, category string) ([]*proddom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	cat := strings.TrimSpace(category)
	if cat == "" {
		return r.List(ctx)
	}
	return r.collect(r.col().Where("category", "==", cat).Documents(ctx))
}

func (r *ProductRepositoryFS) Save(ctx context.Context, p *proddom.Product) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	if p == nil {
		return errors.New("product_repository_fs: product is nil")
	}
	pid := strings.TrimSpace(p.ID)
	if pid == "" {
		return errors.New("product_repository_fs: Save requires p.ID as docId")
	}

	_, err := r.col().Doc(pid).Set(ctx, p)
	return err
}

func (r *ProductRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	pid := strings.TrimSpace(id)
	if pid == "" {
		return errors.New("product_repository_fs: id is empty")
	}

	_, err := r.col().Doc(pid).Delete(ctx)
	return err
}

func (r *ProductRepositoryFS) collect(it *firestore.DocumentIterator) ([]*proddom.Product, error) {
	defer it.Stop()

	out := []*proddom.Product{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var p proddom.Product
		if err := snap.DataTo(&p); err != nil {
			return nil, err
		}
		p.ID = snap.Ref.ID
		out = append(out, &p)
	}
	return out, nil
}
