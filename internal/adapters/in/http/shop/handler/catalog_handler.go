// internal/adapters/in/http/shop/handler/catalog_handler.go
package shopHandler

import (
	"errors"
	"net/http"
	"strings"

	usecase "saidify/internal/application/usecase"
)

// CatalogHandler serves the public product catalog.
//
// Routes:
//   - GET /shop/products            (optional ?category=)
//   - GET /shop/products/{id}
type CatalogHandler struct {
	products   *usecase.ProductUsecase
	categories *usecase.CategoryUsecase
}

func NewCatalogHandler(products *usecase.ProductUsecase, categories *usecase.CategoryUsecase) http.Handler {
	return &CatalogHandler{products: products, categories: categories}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.products == nil {
		internalError(w, "catalog handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	// categories index
	if strings.HasSuffix(path, "/shop/categories") {
		if h.categories == nil {
			internalError(w, "categories are not configured")
			return
		}
		cats, err := h.categories.List(r.Context())
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
		return
	}

	// detail: /shop/products/{id}
	if i := strings.Index(path, "/shop/products/"); i >= 0 {
		id := strings.TrimSpace(path[i+len("/shop/products/"):])
		if id == "" {
			notFound(w)
			return
		}
		p, err := h.products.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, usecase.ErrProductNotFound) {
				notFound(w)
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)
		return
	}

	// index
	list, err := h.products.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": list})
}
