// internal/adapters/in/http/shop/handler/order_handler.go
package shopHandler

import (
	"errors"
	"net/http"
	"strings"

	"saidify/internal/adapters/in/http/middleware"
	usecase "saidify/internal/application/usecase"
	orderdom "saidify/internal/domain/order"
)

// OrderHandler serves the buyer order endpoints.
//
// Routes (all authenticated):
//   - POST /shop/orders       → checkout the stored cart
//   - GET  /shop/orders       → caller's order history
//   - GET  /shop/orders/{id}  → detail (owner only)
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{uc: uc}
}

type checkoutRequest struct {
	Shipping orderdom.Shipping `json:"shipping"`
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "order handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	if i := strings.Index(path, "/shop/orders/"); i >= 0 {
		id := strings.TrimSpace(path[i+len("/shop/orders/"):])
		if id == "" {
			notFound(w)
			return
		}
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		o, err := h.uc.Get(r.Context(), uid, id, false)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrOrderNotFound):
				notFound(w)
			case errors.Is(err, usecase.ErrOrderForbidden):
				writeErr(w, http.StatusForbidden, "forbidden")
			default:
				internalError(w, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusOK, o)
		return
	}

	switch r.Method {
	case http.MethodGet:
		list, err := h.uc.ListMine(r.Context(), uid)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"orders": list})

	case http.MethodPost:
		var body checkoutRequest
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		o, err := h.uc.Checkout(r.Context(), uid, body.Shipping)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrOrderEmptyCart):
				badRequest(w, "cart is empty")
			case errors.Is(err, orderdom.ErrInvalidShipping):
				badRequest(w, "shipping name and address are required")
			default:
				internalError(w, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusCreated, o)

	default:
		methodNotAllowed(w)
	}
}
