// internal/adapters/in/http/middleware/user_auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is an alias so router deps can take
// *middleware.FirebaseAuthClient without importing the firebase package.
type FirebaseAuthClient = fbauth.Client

// context keys use a private type to avoid collisions (SA1029)
type ctxKey struct{ name string }

var (
	ctxKeyUID      = ctxKey{name: "uid"}
	ctxKeyEmail    = ctxKey{name: "email"}
	ctxKeyFullName = ctxKey{name: "fullName"}
)

// UserAuthMiddleware verifies the Authorization: Bearer <ID_TOKEN>
// header against Firebase and stores uid/email/name in the request
// context. Requests without a valid token get 401 — the client
// reconciler reads that as "run in guest tier".
type UserAuthMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *UserAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FirebaseAuth == nil {
			http.Error(w, "user auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		email := ""
		if raw, ok := token.Claims["email"]; ok {
			if e, ok2 := raw.(string); ok2 {
				email = strings.TrimSpace(e)
			}
		}

		fullName := ""
		if raw, ok := token.Claims["name"]; ok {
			if s, ok2 := raw.(string); ok2 {
				fullName = strings.TrimSpace(s)
			}
		}

		ctx := context.WithValue(r.Context(), ctxKeyUID, uid)
		if email != "" {
			ctx = context.WithValue(ctx, ctxKeyEmail, email)
		}
		if fullName != "" {
			ctx = context.WithValue(ctx, ctxKeyFullName, fullName)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUserUID returns the verified Firebase UID.
func CurrentUserUID(r *http.Request) (string, bool) {
	u, ok := r.Context().Value(ctxKeyUID).(string)
	if !ok || strings.TrimSpace(u) == "" {
		return "", false
	}
	return strings.TrimSpace(u), true
}

// CurrentUserIdentity returns uid plus the optional email and name
// claims (either can be empty).
func CurrentUserIdentity(r *http.Request) (uid, email, fullName string, ok bool) {
	uid, ok = CurrentUserUID(r)
	if !ok {
		return "", "", "", false
	}
	if e, ok2 := r.Context().Value(ctxKeyEmail).(string); ok2 {
		email = strings.TrimSpace(e)
	}
	if n, ok2 := r.Context().Value(ctxKeyFullName).(string); ok2 {
		fullName = strings.TrimSpace(n)
	}
	return uid, email, fullName, true
}
