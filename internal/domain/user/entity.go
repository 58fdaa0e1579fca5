// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidID    = errors.New("user: invalid id")
	ErrInvalidEmail = errors.New("user: invalid email")
	ErrInvalidRole  = errors.New("user: invalid role")
)

// Role separates storefront clients from back-office admins.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a storefront account, keyed by the Firebase uid.
type User struct {
	// ID is the Firestore docId (= Firebase uid).
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	FullName string `json:"fullName" firestore:"fullName"`
	Role     Role   `json:"role" firestore:"role"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New validates and builds a User with the default role.
func New(id, email, fullName string, now time.Time) (*User, error) {
	u := &User{
		ID:        strings.TrimSpace(id),
		Email:     strings.TrimSpace(email),
		FullName:  strings.TrimSpace(fullName),
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks identity fields.
func (u *User) Validate() error {
	if u == nil || strings.TrimSpace(u.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(u.Email) == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	switch u.Role {
	case RoleUser, RoleAdmin:
	default:
		return ErrInvalidRole
	}
	return nil
}

// IsAdmin reports whether the user may reach the admin surface.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
