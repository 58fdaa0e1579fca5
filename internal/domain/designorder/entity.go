// internal/domain/designorder/entity.go
package designorder

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidID      = errors.New("designorder: invalid id")
	ErrInvalidUser    = errors.New("designorder: invalid userId")
	ErrInvalidBlank   = errors.New("designorder: invalid blankId")
	ErrInvalidLayer   = errors.New("designorder: invalid layer")
	ErrUnknownLayer   = errors.New("designorder: unknown layer type")
	ErrInvalidStatus  = errors.New("designorder: invalid status")
	ErrInvalidViewRef = errors.New("designorder: layer references unknown view")
)

// LayerType discriminates text vs image layers.
type LayerType string

const (
	LayerText  LayerType = "text"
	LayerImage LayerType = "image"
)

// Transform is the per-layer placement state recorded by the canvas
// editor. Stored verbatim; no composition math happens server-side.
type Transform struct {
	X        float64 `json:"x" firestore:"x"`
	Y        float64 `json:"y" firestore:"y"`
	Scale    float64 `json:"scale" firestore:"scale"`
	Rotation float64 `json:"rotation" firestore:"rotation"`
	ZIndex   int     `json:"zIndex" firestore:"zIndex"`
}

// Layer is one text or image element placed on a view.
// Text fields are used when Type == text, AssetURL when Type == image.
type Layer struct {
	Type      LayerType `json:"type" firestore:"type"`
	View      string    `json:"view" firestore:"view"`
	Transform Transform `json:"transform" firestore:"transform"`

	Text      string `json:"text,omitempty" firestore:"text"`
	FontName  string `json:"fontName,omitempty" firestore:"fontName"`
	FontSize  int    `json:"fontSize,omitempty" firestore:"fontSize"`
	TextColor string `json:"textColor,omitempty" firestore:"textColor"`

	AssetURL string `json:"assetUrl,omitempty" firestore:"assetUrl"`
}

// Status of a design order.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// DesignOrder is a customer design over a blank product: a passive layer
// list per view, plus selection (color/size) and lifecycle status.
type DesignOrder struct {
	ID      string `json:"id" firestore:"id"`
	UserID  string `json:"userId" firestore:"userId"`
	BlankID string `json:"blankId" firestore:"blankId"`

	SelectedColor string  `json:"selectedColor" firestore:"selectedColor"`
	SelectedSize  string  `json:"selectedSize" firestore:"selectedSize"`
	Layers        []Layer `json:"layers" firestore:"layers"`
	Status        Status  `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New validates and builds a DesignOrder in draft status.
// viewNames is the set of view names offered by the blank; every layer
// must reference one of them.
func New(id, userID, blankID, color, size string, layers []Layer, viewNames []string, now time.Time) (*DesignOrder, error) {
	d := &DesignOrder{
		ID:            strings.TrimSpace(id),
		UserID:        strings.TrimSpace(userID),
		BlankID:       strings.TrimSpace(blankID),
		SelectedColor: strings.TrimSpace(color),
		SelectedSize:  strings.TrimSpace(size),
		Layers:        layers,
		Status:        StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := d.Validate(viewNames); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks identity fields and every layer. viewNames may be nil
// to skip view-reference checking (e.g. when the blank was deleted).
func (d *DesignOrder) Validate(viewNames []string) error {
	if d == nil || strings.TrimSpace(d.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(d.UserID) == "" {
		return ErrInvalidUser
	}
	if strings.TrimSpace(d.BlankID) == "" {
		return ErrInvalidBlank
	}
	switch d.Status {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
	default:
		return ErrInvalidStatus
	}

	views := map[string]bool{}
	for _, n := range viewNames {
		views[strings.TrimSpace(n)] = true
	}

	for _, l := range d.Layers {
		switch l.Type {
		case LayerText:
			if strings.TrimSpace(l.Text) == "" {
				return ErrInvalidLayer
			}
		case LayerImage:
			if strings.TrimSpace(l.AssetURL) == "" {
				return ErrInvalidLayer
			}
		default:
			return ErrUnknownLayer
		}
		if viewNames != nil && !views[strings.TrimSpace(l.View)] {
			return ErrInvalidViewRef
		}
	}
	return nil
}

// SetStatus transitions the order status.
func (d *DesignOrder) SetStatus(s Status, now time.Time) error {
	if d == nil {
		return ErrInvalidID
	}
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
	default:
		return ErrInvalidStatus
	}
	d.Status = s
	d.UpdatedAt = now
	return nil
}
