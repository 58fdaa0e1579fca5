// internal/adapters/in/http/shop/handler/me_handler.go
package shopHandler

import (
	"net/http"

	"saidify/internal/adapters/in/http/middleware"
	usecase "saidify/internal/application/usecase"
)

// MeHandler resolves the current user document, creating it on first
// authenticated request (sign-in landing call from the frontend).
//
// Routes:
//   - POST /shop/me → ensure + return the user document
//   - GET  /shop/me → return the user document
type MeHandler struct {
	uc *usecase.UserUsecase
}

func NewMeHandler(uc *usecase.UserUsecase) http.Handler {
	return &MeHandler{uc: uc}
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "me handler is not configured")
		return
	}

	uid, email, fullName, ok := middleware.CurrentUserIdentity(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodPost:
		u, err := h.uc.EnsureUser(r.Context(), uid, email, fullName)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, u)
	default:
		methodNotAllowed(w)
	}
}
