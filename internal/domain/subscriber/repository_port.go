// internal/domain/subscriber/repository_port.go
package subscriber

import "context"

// Repository is a persistence port for Subscriber.
//
// Storage (Firestore): collection "subscribers", docId = email.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	List(ctx context.Context) ([]*Subscriber, error)
	Save(ctx context.Context, s *Subscriber) error
	DeleteByEmail(ctx context.Context, email string) error
}
