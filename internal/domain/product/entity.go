// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidID    = errors.New("product: invalid id")
	ErrInvalidTitle = errors.New("product: invalid title")
	ErrInvalidPrice = errors.New("product: invalid price")
)

// Product is a catalog item shown in the storefront.
// Price is the display string as entered by the admin ("199.99 MAD");
// numeric interpretation happens in pricing.ParseAmount.
type Product struct {
	ID          string   `json:"id" firestore:"id"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Price       string   `json:"price" firestore:"price"`
	Images      []string `json:"images" firestore:"images"`
	Category    string   `json:"category" firestore:"category"`
	Sizes       []string `json:"sizes" firestore:"sizes"`
	Colors      []string `json:"colors" firestore:"colors"`
	InStock     bool     `json:"inStock" firestore:"inStock"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New validates and builds a Product.
func New(id, title, description, price, category string, images, sizes, colors []string, inStock bool, now time.Time) (*Product, error) {
	p := &Product{
		ID:          strings.TrimSpace(id),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Price:       strings.TrimSpace(price),
		Images:      images,
		Category:    strings.TrimSpace(category),
		Sizes:       sizes,
		Colors:      colors,
		InStock:     inStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks required fields.
func (p *Product) Validate() error {
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrInvalidTitle
	}
	if strings.TrimSpace(p.Price) == "" {
		return ErrInvalidPrice
	}
	return nil
}
