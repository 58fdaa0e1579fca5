// internal/adapters/in/http/admin/handler/client_handler.go
package adminHandler

import (
	"errors"
	"net/http"

	usecase "saidify/internal/application/usecase"
	userdom "saidify/internal/domain/user"
)

// ClientHandler serves the back-office view over registered shoppers.
//
// Routes:
//   - GET    /admin/clients
//   - GET    /admin/clients/{id}
//   - PATCH  /admin/clients/{id}   → {"role": "admin"|"user"}
//   - DELETE /admin/clients/{id}
type ClientHandler struct {
	uc *usecase.UserUsecase
}

func NewClientHandler(uc *usecase.UserUsecase) http.Handler {
	return &ClientHandler{uc: uc}
}

func (h *ClientHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "client handler is not configured")
		return
	}

	id := pathID(r.URL.Path, "/admin/clients/")

	if id == "" {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		list, err := h.uc.List(r.Context())
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"clients": list})
		return
	}

	switch r.Method {
	case http.MethodGet:
		u, err := h.uc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				notFound(w)
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, u)

	case http.MethodPatch:
		var body struct {
			Role userdom.Role `json:"role"`
		}
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		u, err := h.uc.SetRole(r.Context(), id, body.Role)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrUserNotFound):
				notFound(w)
			case errors.Is(err, userdom.ErrInvalidRole):
				badRequest(w, "invalid role")
			default:
				internalError(w, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusOK, u)

	case http.MethodDelete:
		if err := h.uc.Delete(r.Context(), id); err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		methodNotAllowed(w)
	}
}
