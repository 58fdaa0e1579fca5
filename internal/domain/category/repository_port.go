// internal/domain/category/repository_port.go
package category

import "context"

// Repository is a persistence port for Category.
//
// Storage (Firestore): collection "categories", docId = category id.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Save(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
}
