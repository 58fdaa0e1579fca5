// internal/domain/blankproduct/entity.go
package blankproduct

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidID    = errors.New("blankproduct: invalid id")
	ErrInvalidTitle = errors.New("blankproduct: invalid title")
	ErrInvalidView  = errors.New("blankproduct: invalid view")
	ErrInvalidZone  = errors.New("blankproduct: invalid print zone")
)

// PrintZone is the printable rectangle on one mockup view,
// in pixels relative to the mockup image.
type PrintZone struct {
	X      float64 `json:"x" firestore:"x"`
	Y      float64 `json:"y" firestore:"y"`
	Width  float64 `json:"width" firestore:"width"`
	Height float64 `json:"height" firestore:"height"`
}

// View is one side of the blank (front, back, sleeve...) with its mockup
// image and print zone. Pure data at rest: the canvas editor consumes it,
// nothing here renders or clips.
type View struct {
	Name      string    `json:"name" firestore:"name"`
	MockupURL string    `json:"mockupUrl" firestore:"mockupUrl"`
	Zone      PrintZone `json:"zone" firestore:"zone"`
}

// BlankProduct is a customizable blank offered in the design studio.
type BlankProduct struct {
	ID        string   `json:"id" firestore:"id"`
	Title     string   `json:"title" firestore:"title"`
	BasePrice string   `json:"basePrice" firestore:"basePrice"`
	Colors    []string `json:"colors" firestore:"colors"`
	Sizes     []string `json:"sizes" firestore:"sizes"`
	Views     []View   `json:"views" firestore:"views"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Validate checks required fields and zone geometry.
func (b *BlankProduct) Validate() error {
	if b == nil || strings.TrimSpace(b.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(b.Title) == "" {
		return ErrInvalidTitle
	}
	for _, v := range b.Views {
		if strings.TrimSpace(v.Name) == "" || strings.TrimSpace(v.MockupURL) == "" {
			return ErrInvalidView
		}
		if v.Zone.Width <= 0 || v.Zone.Height <= 0 || v.Zone.X < 0 || v.Zone.Y < 0 {
			return ErrInvalidZone
		}
	}
	return nil
}

// ViewByName returns the named view, if present.
func (b *BlankProduct) ViewByName(name string) (View, bool) {
	if b == nil {
		return View{}, false
	}
	n := strings.TrimSpace(name)
	for _, v := range b.Views {
		if v.Name == n {
			return v, true
		}
	}
	return View{}, false
}
