// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderdom "saidify/internal/domain/order"
)

// OrderRepositoryFS implements order.Repository using Firestore.
//
// Collection design:
// - collection: orders
// - docId: order id
// - userId is a plain field; ListByUserID queries on it
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("orders")
}

func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (*orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	oid := strings.TrimSpace(id)
	if oid == "" {
		return nil, errors.New("order_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(oid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var o orderdom.Order
	if err := snap.DataTo(&o); err != nil {
		return nil, err
	}
	o.ID = oid
	return &o, nil
}

func (r *OrderRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]*orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("order_repository_fs: userID is empty")
	}
	return r.collect(r.col().Where("userId", "==", uid).Documents(ctx))
}

func (r *OrderRepositoryFS) List(ctx context.Context) ([]*orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	return r.collect(r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx))
}

func (r *OrderRepositoryFS) Save(ctx context.Context, o *orderdom.Order) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}
	if o == nil {
		return errors.New("order_repository_fs: order is nil")
	}
	oid := strings.TrimSpace(o.ID)
	if oid == "" {
		return errors.New("order_repository_fs: Save requires o.ID as docId")
	}

	_, err := r.col().Doc(oid).Set(ctx, o)
	return err
}

func (r *OrderRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}
	oid := strings.TrimSpace(id)
	if oid == "" {
		return errors.New("order_repository_fs: id is empty")
	}

	_, err := r.col().Doc(oid).Delete(ctx)
	return err
}

func (r *OrderRepositoryFS) collect(it *firestore.DocumentIterator) ([]*orderdom.Order, error) {
	defer it.Stop()

	out := []*orderdom.Order{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var o orderdom.Order
		if err := snap.DataTo(&o); err != nil {
			return nil, err
		}
		o.ID = snap.Ref.ID
		out = append(out, &o)
	}
	return out, nil
}
