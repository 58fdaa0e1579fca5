// internal/domain/user/repository_port.go
package user

import "context"

// Repository is a persistence port for User.
//
// Storage (Firestore): collection "users", docId = Firebase uid.
type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
