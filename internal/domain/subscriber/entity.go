// internal/domain/subscriber/entity.go
package subscriber

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidEmail = errors.New("subscriber: invalid email")

// Subscriber is one newsletter recipient, keyed by email.
type Subscriber struct {
	// Email doubles as the Firestore docId (lowercased).
	Email        string    `json:"email" firestore:"email"`
	SubscribedAt time.Time `json:"subscribedAt" firestore:"subscribedAt"`
}

// New normalizes and validates an email into a Subscriber.
func New(email string, now time.Time) (*Subscriber, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" || !strings.Contains(e, "@") {
		return nil, ErrInvalidEmail
	}
	return &Subscriber{Email: e, SubscribedAt: now}, nil
}
