// internal/adapters/in/http/middleware/admin_auth.go
package middleware

import (
	"log"
	"net/http"

	userdom "saidify/internal/domain/user"
)

// AdminAuthMiddleware gates the back-office surface: it runs AFTER
// UserAuthMiddleware and rejects callers whose user document does not
// carry the admin role.
type AdminAuthMiddleware struct {
	UserRepo userdom.Repository
}

func (m *AdminAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.UserRepo == nil {
			http.Error(w, "admin middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		uid, ok := CurrentUserUID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := m.UserRepo.GetByID(r.Context(), uid)
		if err != nil {
			log.Printf("[admin_auth] user lookup failed uid=%s: %v", uid, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if u == nil || !u.IsAdmin() {
			http.Error(w, "forbidden: admin only", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
