// internal/adapters/in/http/admin/handler/order_handler.go
package adminHandler

import (
	"errors"
	"net/http"

	usecase "saidify/internal/application/usecase"
	orderdom "saidify/internal/domain/order"
)

// OrderHandler serves the back-office order management.
//
// Routes:
//   - GET    /admin/orders
//   - GET    /admin/orders/{id}
//   - PATCH  /admin/orders/{id}   → {"status": ...}
//   - DELETE /admin/orders/{id}
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "order handler is not configured")
		return
	}

	id := pathID(r.URL.Path, "/admin/orders/")

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
		writeJSON(w, http.StatusOK, map[string]any{"orders": list})
		return
	}

	switch r.Method {
	case http.MethodGet:
		o, err := h.uc.Get(r.Context(), "", id, true)
		if err != nil {
			if errors.Is(err, usecase.ErrOrderNotFound) {
				notFound(w)
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, o)

	case http.MethodPatch:
		var body struct {
			Status orderdom.Status `json:"status"`
		}
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		o, err := h.uc.SetStatus(r.Context(), id, body.Status)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrOrderNotFound):
				notFound(w)
			case errors.Is(err, orderdom.ErrInvalidStatus):
				badRequest(w, "invalid status")
			default:
				internalError(w, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusOK, o)

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
