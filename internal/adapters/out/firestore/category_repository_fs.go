// internal/adapters/out/firestore/category_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catdom "saidify/internal/domain/category"
)

// CategoryRepositoryFS implements category.Repository using Firestore.
//
// Collection design:
// - collection: categories
// - docId: category id
type CategoryRepositoryFS struct {
	Client *firestore.Client
}

func NewCategoryRepositoryFS(client *firestore.Client) *CategoryRepositoryFS {
	return &CategoryRepositoryFS{Client: client}
}

func (r *CategoryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("categories")
}

func (r *CategoryRepositoryFS) GetByID(ctx context.Context, id string) (*catdom.Category, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("category_repository_fs: firestore client is nil")
	}
	cid := strings.TrimSpace(id)
	if cid == "" {
		return nil, errors.New("category_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(cid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var c catdom.Category
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = cid
	return &c, nil
}

func (r *CategoryRepositoryFS) List(ctx context.Context) ([]*catdom.Category, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("category_repository_fs: firestore client is nil")
	}

	it := r.col().OrderBy("name", firestore.Asc).Documents(ctx)
	defer it.Stop()

	out := []*catdom.Category{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var c catdom.Category
		if err := snap.DataTo(&c); err != nil {
			return nil, err
		}
		c.ID = snap.Ref.ID
		out = append(out, &c)
	}
	return out, nil
}

func (r *CategoryRepositoryFS) Save(ctx context.Context, c *catdom.Category) error {
	if r == nil || r.Client == nil {
		return errors.New("category_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("category_repository_fs: category is nil")
	}
	cid := strings.TrimSpace(c.ID)
	if cid == "" {
		return errors.New("category_repository_fs: Save requires c.ID as docId")
	}

	_, err := r.col().Doc(cid).Set(ctx, c)
	return err
}

func (r *CategoryRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("category_repository_fs: firestore client is nil")
	}
	cid := strings.TrimSpace(id)
	if cid == "" {
		return errors.New("category_repository_fs: id is empty")
	}

	_, err := r.col().Doc(cid).Delete(ctx)
	return err
}
