// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"

	"saidify/internal/domain/cart"
	"saidify/internal/domain/pricing"
)

var (
	ErrInvalidID       = errors.New("order: invalid id")
	ErrInvalidUser     = errors.New("order: invalid userId")
	ErrEmptyOrder      = errors.New("order: no lines")
	ErrInvalidStatus   = errors.New("order: invalid status")
	ErrInvalidShipping = errors.New("order: invalid shipping info")
)

// Status of an order record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Shipping is the delivery info captured at checkout.
type Shipping struct {
	FullName string `json:"fullName" firestore:"fullName"`
	Phone    string `json:"phone" firestore:"phone"`
	Address  string `json:"address" firestore:"address"`
	City     string `json:"city" firestore:"city"`
}

// Order is a checkout-adjacent record: a snapshot of cart lines plus
// totals computed at creation time. Lines are copied, never shared with
// the live cart.
type Order struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"userId" firestore:"userId"`

	Lines    []cart.Line `json:"lines" firestore:"lines"`
	Subtotal float64     `json:"subtotal" firestore:"subtotal"`
	Status   Status      `json:"status" firestore:"status"`
	Shipping Shipping    `json:"shipping" firestore:"shipping"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New builds a pending order from a line snapshot.
func New(id, userID string, lines []cart.Line, shipping Shipping, now time.Time) (*Order, error) {
	merged := cart.MergeLines(lines)
	o := &Order{
		ID:        strings.TrimSpace(id),
		UserID:    strings.TrimSpace(userID),
		Lines:     merged,
		Subtotal:  subtotal(merged),
		Status:    StatusPending,
		Shipping:  shipping,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks identity, lines and shipping info.
func (o *Order) Validate() error {
	if o == nil || strings.TrimSpace(o.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(o.UserID) == "" {
		return ErrInvalidUser
	}
	if len(o.Lines) == 0 {
		return ErrEmptyOrder
	}
	switch o.Status {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
	default:
		return ErrInvalidStatus
	}
	if strings.TrimSpace(o.Shipping.FullName) == "" || strings.TrimSpace(o.Shipping.Address) == "" {
		return ErrInvalidShipping
	}
	return nil
}

// SetStatus transitions the order status (admin operation).
func (o *Order) SetStatus(s Status, now time.Time) error {
	if o == nil {
		return ErrInvalidID
	}
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
	default:
		return ErrInvalidStatus
	}
	o.Status = s
	o.UpdatedAt = now
	return nil
}

func subtotal(lines []cart.Line) float64 {
	sum := 0.0
	for _, l := range lines {
		sum += pricing.ParseAmount(l.Price) * float64(l.Quantity)
	}
	return sum
}
