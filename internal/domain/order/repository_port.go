// internal/domain/order/repository_port.go
package order

import "context"

// Repository is a persistence port for Order.
//
// Storage (Firestore): collection "orders", docId = order id.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByUserID(ctx context.Context, userID string) ([]*Order, error)
	List(ctx context.Context) ([]*Order, error)
	Save(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id string) error
}
