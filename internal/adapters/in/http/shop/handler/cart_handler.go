// internal/adapters/in/http/shop/handler/cart_handler.go
package shopHandler

import (
	"errors"
	"log"
	"net/http"

	"saidify/internal/adapters/in/http/middleware"
	usecase "saidify/internal/application/usecase"
	cartdom "saidify/internal/domain/cart"
)

// CartHandler serves the authenticated cart resource.
//
// Routes:
//   - GET    /shop/cart  → {"cart": [...]}
//   - POST   /shop/cart  → add-or-increment {"item": {...}}
//   - PUT    /shop/cart  → full replace {"cart": [...]}
//   - DELETE /shop/cart  → clear
//
// The response always carries the stored list so the client can adopt
// it verbatim.
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

type cartResponse struct {
	Cart []cartdom.Line `json:"cart"`
}

func cartBody(c *cartdom.Cart) cartResponse {
	if c == nil || c.Lines == nil {
		return cartResponse{Cart: []cartdom.Line{}}
	}
	return cartResponse{Cart: c.Lines}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "cart handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet:
		c, err := h.uc.Get(r.Context(), uid)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, cartBody(c))

	case http.MethodPost:
		var body struct {
			Item cartdom.Line `json:"item"`
		}
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		c, err := h.uc.AddLine(r.Context(), uid, body.Item)
		if err != nil {
			if errors.Is(err, usecase.ErrCartInvalidArgument) || errors.Is(err, cartdom.ErrInvalidLine) {
				badRequest(w, err.Error())
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, cartBody(c))

	case http.MethodPut:
		var body cartResponse
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		c, err := h.uc.Replace(r.Context(), uid, body.Cart)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, cartBody(c))

	case http.MethodDelete:
		if err := h.uc.Clear(r.Context(), uid); err != nil {
			log.Printf("[shop_cart_handler] clear failed uid=%s: %v", uid, err)
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, cartResponse{Cart: []cartdom.Line{}})

	default:
		methodNotAllowed(w)
	}
}
