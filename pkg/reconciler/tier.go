// pkg/reconciler/tier.go
package reconciler

import "errors"

// Tier is the storage tier that owns the authoritative copy of a
// cart/wishlist for the current session. It resolves exactly once, at
// Init time, and never changes afterwards: a login mid-session does not
// promote Guest to Authenticated until the app re-runs Init (see
// DESIGN.md for the recorded decision).
type Tier int

const (
	// TierUnresolved is the state before Init has run. No writes happen
	// in this state.
	TierUnresolved Tier = iota

	// TierGuest persists to client-side local storage only.
	TierGuest

	// TierAuthenticated persists to the server record of the resolved
	// user; local storage is never written in this tier.
	TierAuthenticated
)

func (t Tier) String() string {
	switch t {
	case TierGuest:
		return "guest"
	case TierAuthenticated:
		return "authenticated"
	default:
		return "unresolved"
	}
}

var (
	// ErrNotInitialized is returned by mutations before Init resolved the tier.
	ErrNotInitialized = errors.New("reconciler: not initialized")

	// ErrUnauthorized marks a remote fetch rejected for lack of identity
	// (HTTP 401). Init treats it as "no session" and falls back to Guest.
	ErrUnauthorized = errors.New("reconciler: unauthorized")
)
