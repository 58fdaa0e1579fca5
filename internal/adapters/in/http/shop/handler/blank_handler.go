// internal/adapters/in/http/shop/handler/blank_handler.go
package shopHandler

import (
	"errors"
	"net/http"
	"strings"

	usecase "saidify/internal/application/usecase"
)

// BlankHandler serves the public design-studio blanks.
//
// Routes:
//   - GET /shop/blanks
//   - GET /shop/blanks/{id}
type BlankHandler struct {
	uc *usecase.BlankProductUsecase
}

func NewBlankHandler(uc *usecase.BlankProductUsecase) http.Handler {
	return &BlankHandler{uc: uc}
}

func (h *BlankHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "blank handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	if i := strings.Index(path, "/shop/blanks/"); i >= 0 {
		id := strings.TrimSpace(path[i+len("/shop/blanks/"):])
		if id == "" {
			notFound(w)
			return
		}
		b, err := h.uc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, usecase.ErrBlankNotFound) {
				notFound(w)
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, b)
		return
	}

	list, err := h.uc.List(r.Context())
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"blanks": list})
}
