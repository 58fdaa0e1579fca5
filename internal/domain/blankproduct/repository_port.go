// internal/domain/blankproduct/repository_port.go
package blankproduct

import "context"

// Repository is a persistence port for BlankProduct.
//
// Storage (Firestore): collection "blankProducts", docId = blank id.
type Repository interface {
	GetByID(ctx context.Context, id string) (*BlankProduct, error)
	List(ctx context.Context) ([]*BlankProduct, error)
	Save(ctx context.Context, b *BlankProduct) error
	Delete(ctx context.Context, id string) error
}
