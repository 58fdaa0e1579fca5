// internal/domain/product/repository_port.go
package product

import "context"

// Repository is a persistence port for Product.
//
// Storage (Firestore): collection "products", docId = product id.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	ListByCategory(ctx context.Context, category string) ([]*Product, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
