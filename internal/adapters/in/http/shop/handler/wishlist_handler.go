// internal/adapters/in/http/shop/handler/wishlist_handler.go
package shopHandler

import (
	"errors"
	"net/http"

	"saidify/internal/adapters/in/http/middleware"
	usecase "saidify/internal/application/usecase"
	wishdom "saidify/internal/domain/wishlist"
)

// WishlistHandler serves the authenticated wishlist resource.
//
// Routes:
//   - GET  /shop/wishlist → {"wishlist": [...]}
//   - POST /shop/wishlist → toggle membership for productId
type WishlistHandler struct {
	uc *usecase.WishlistUsecase
}

func NewWishlistHandler(uc *usecase.WishlistUsecase) http.Handler {
	return &WishlistHandler{uc: uc}
}

type wishlistResponse struct {
	Wishlist []wishdom.Entry `json:"wishlist"`
}

func wishlistBody(wl *wishdom.Wishlist) wishlistResponse {
	if wl == nil || wl.Entries == nil {
		return wishlistResponse{Wishlist: []wishdom.Entry{}}
	}
	return wishlistResponse{Wishlist: wl.Entries}
}

func (h *WishlistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "wishlist handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet:
		wl, err := h.uc.Get(r.Context(), uid)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, wishlistBody(wl))

	case http.MethodPost:
		var body wishdom.Entry
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		wl, _, err := h.uc.Toggle(r.Context(), uid, body)
		if err != nil {
			if errors.Is(err, usecase.ErrWishlistInvalidArgument) {
				badRequest(w, err.Error())
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, wishlistBody(wl))

	default:
		methodNotAllowed(w)
	}
}
