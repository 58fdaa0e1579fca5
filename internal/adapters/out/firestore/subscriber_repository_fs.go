// internal/adapters/out/firestore/subscriber_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	subdom "saidify/internal/domain/subscriber"
)

// SubscriberRepositoryFS implements subscriber.Repository using Firestore.
//
// Collection design:
// - collection: subscribers
// - docId: email (lowercased by the domain)
type SubscriberRepositoryFS struct {
	Client *firestore.Client
}

func NewSubscriberRepositoryFS(client *firestore.Client) *SubscriberRepositoryFS {
	return &SubscriberRepositoryFS{Client: client}
}

func (r *SubscriberRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("subscribers")
}

func (r *SubscriberRepositoryFS) GetByEmail(ctx context.Context, email string) (*subdom.Subscriber, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("subscriber_repository_fs: firestore client is nil")
	}
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return nil, errors.New("subscriber_repository_fs: email is empty")
	}

	snap, err := r.col().Doc(e).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var s subdom.Subscriber
	if err := snap.DataTo(&s); err != nil {
		return nil, err
	}
	s.Email = e
	return &s, nil
}

func (r *SubscriberRepositoryFS) List(ctx context.Context) ([]*subdom.Subscriber, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("subscriber_repository_fs: firestore client is nil")
	}

	it := r.col().OrderBy("subscribedAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	out := []*subdom.Subscriber{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var s subdom.Subscriber
		if err := snap.DataTo(&s); err != nil {
			return nil, err
		}
		s.Email = snap.Ref.ID
		out = append(out, &s)
	}
	return out, nil
}

func (r *SubscriberRepositoryFS) Save(ctx context.Context, s *subdom.Subscriber) error {
	if r == nil || r.Client == nil {
		return errors.New("subscriber_repository_fs: firestore client is nil")
	}
	if s == nil {
		return errors.New("subscriber_repository_fs: subscriber is nil")
	}
	e := strings.ToLower(strings.TrimSpace(s.Email))
	if e == "" {
		return errors.New("subscriber_repository_fs: Save requires s.Email as docId")
	}

	_, err := r.col().Doc(e).Set(ctx, s)
	return err
}

func (r *SubscriberRepositoryFS) DeleteByEmail(ctx context.Context, email string) error {
	if r == nil || r.Client == nil {
		return errors.New("subscriber_repository_fs: firestore client is nil")
	}
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return errors.New("subscriber_repository_fs: email is empty")
	}

	_, err := r.col().Doc(e).Delete(ctx)
	return err
}
