// internal/adapters/out/firestore/designOrder_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dodom "saidify/internal/domain/designorder"
)

// DesignOrderRepositoryFS implements designorder.Repository using Firestore.
//
// Collection design:
// - collection: designOrders
// - docId: design order id
// - userId is a plain field; ListByUserID queries on it
type DesignOrderRepositoryFS struct {
	Client *firestore.Client
}

func NewDesignOrderRepositoryFS(client *firestore.Client) *DesignOrderRepositoryFS {
	return &DesignOrderRepositoryFS{Client: client}
}

func (r *DesignOrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("designOrders")
}

func (r *DesignOrderRepositoryFS) GetByID(ctx context.Context, id string) (*dodom.DesignOrder, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("designOrder_repository_fs: firestore client is nil")
	}
	did := strings.TrimSpace(id)
	if did == "" {
		return nil, errors.New("designOrder_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(did).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var d dodom.DesignOrder
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	d.ID = did
	return &d, nil
}

func (r *DesignOrderRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]*dodom.DesignOrder, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("designOrder_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("designOrder_repository_fs: userID is empty")
	}
	return r.collect(r.col().Where("userId", "==", uid).Documents(ctx))
}

func (r *DesignOrderRepositoryFS) List(ctx context.Context) ([]*dodom.DesignOrder, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("designOrder_repository_fs: firestore client is nil")
	}
	return r.collect(r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx))
}

func (r *DesignOrderRepositoryFS) Save(ctx context.Context, d *dodom.DesignOrder) error {
	if r == nil || r.Client == nil {
		return errors.New("designOrder_repository_fs: firestore client is nil")
	}
	if d == nil {
		return errors.New("designOrder_repository_fs: design order is nil")
	}
	did := strings.TrimSpace(d.ID)
	if did == "" {
		return errors.New("designOrder_repository_fs: Save requires d.ID as docId")
	}

	_, err := r.col().Doc(did).Set(ctx, d)
	return err
}

func (r *DesignOrderRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("designOrder_repository_fs: firestore client is nil")
	}
	did := strings.TrimSpace(id)
	if did == "" {
		return errors.New("designOrder_repository_fs: id is empty")
	}

	_, err := r.col().Doc(did).Delete(ctx)
	return err
}

func (r *DesignOrderRepositoryFS) collect(it *firestore.DocumentIterator) ([]*dodom.DesignOrder, error) {
	defer it.Stop()

	out := []*dodom.DesignOrder{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d dodom.DesignOrder
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		d.ID = snap.Ref.ID
		out = append(out, &d)
	}
	return out, nil
}
