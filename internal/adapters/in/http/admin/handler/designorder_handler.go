// internal/adapters/in/http/admin/handler/designorder_handler.go
package adminHandler

import (
	"errors"
	"net/http"

	usecase "saidify/internal/application/usecase"
	dodom "saidify/internal/domain/designorder"
)

// DesignOrderHandler serves the back-office design review queue.
//
// Routes:
//   - GET    /admin/design-orders
//   - GET    /admin/design-orders/{id}
//   - PATCH  /admin/design-orders/{id}   → {"status": "approved"|"rejected"|...}
//   - DELETE /admin/design-orders/{id}
type DesignOrderHandler struct {
	uc *usecase.DesignOrderUsecase
}

func NewDesignOrderHandler(uc *usecase.DesignOrderUsecase) http.Handler {
	return &DesignOrderHandler{uc: uc}
}

func (h *DesignOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "design order handler is not configured")
		return
	}

	id := pathID(r.URL.Path, "/admin/design-orders/")

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
		writeJSON(w, http.StatusOK, map[string]any{"designOrders": list})
		return
	}

	switch r.Method {
	case http.MethodGet:
		d, err := h.uc.Get(r.Context(), "", id, true)
		if err != nil {
			if errors.Is(err, usecase.ErrDesignOrderNotFound) {
				notFound(w)
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, d)

	case http.MethodPatch:
		var body struct {
			Status dodom.Status `json:"status"`
		}
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		d, err := h.uc.SetStatus(r.Context(), id, body.Status)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrDesignOrderNotFound):
				notFound(w)
			case errors.Is(err, dodom.ErrInvalidStatus):
				badRequest(w, "invalid status")
			default:
				internalError(w, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusOK, d)

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
