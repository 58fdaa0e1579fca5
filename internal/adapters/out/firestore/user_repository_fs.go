// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdom "saidify/internal/domain/user"
)

// UserRepositoryFS implements user.Repository using Firestore.
//
// Collection design:
// - collection: users
// - docId: Firebase uid
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

func (r *UserRepositoryFS) GetByID(ctx context.Context, id string) (*userdom.User, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(id)
	if uid == "" {
		return nil, errors.New("user_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var u userdom.User
	if err := snap.DataTo(&u); err != nil {
		return nil, err
	}
	u.ID = uid
	return &u, nil
}

func (r *UserRepositoryFS) List(ctx context.Context) ([]*userdom.User, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}

	it := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	out := []*userdom.User{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var u userdom.User
		if err := snap.DataTo(&u); err != nil {
			return nil, err
		}
		u.ID = snap.Ref.ID
		out = append(out, &u)
	}
	return out, nil
}

func (r *UserRepositoryFS) Save(ctx context.Context, u *userdom.User) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	if u == nil {
		return errors.New("user_repository_fs: user is nil")
	}
	uid := strings.TrimSpace(u.ID)
	if uid == "" {
		return errors.New("user_repository_fs: Save requires u.ID (= uid) as docId")
	}

	_, err := r.col().Doc(uid).Set(ctx, u)
	return err
}

func (r *UserRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(id)
	if uid == "" {
		return errors.New("user_repository_fs: id is empty")
	}

	_, err := r.col().Doc(uid).Delete(ctx)
	return err
}
