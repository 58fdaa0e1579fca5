// internal/domain/designorder/repository_port.go
package designorder

import "context"

// Repository is a persistence port for DesignOrder.
//
// Storage (Firestore): collection "designOrders", docId = design order id.
type Repository interface {
	GetByID(ctx context.Context, id string) (*DesignOrder, error)
	ListByUserID(ctx context.Context, userID string) ([]*DesignOrder, error)
	List(ctx context.Context) ([]*DesignOrder, error)
	Save(ctx context.Context, d *DesignOrder) error
	Delete(ctx context.Context, id string) error
}
