// internal/domain/category/entity.go
package category

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidID   = errors.New("category: invalid id")
	ErrInvalidName = errors.New("category: invalid name")
)

// Category groups catalog products.
type Category struct {
	ID    string `json:"id" firestore:"id"`
	Name  string `json:"name" firestore:"name"`
	Image string `json:"image" firestore:"image"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New validates and builds a Category.
func New(id, name, image string, now time.Time) (*Category, error) {
	c := &Category{
		ID:        strings.TrimSpace(id),
		Name:      strings.TrimSpace(name),
		Image:     strings.TrimSpace(image),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks required fields.
func (c *Category) Validate() error {
	if c == nil || strings.TrimSpace(c.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidName
	}
	return nil
}
