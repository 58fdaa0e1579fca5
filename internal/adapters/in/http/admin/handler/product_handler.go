// internal/adapters/in/http/admin/handler/product_handler.go
package adminHandler

import (
	"errors"
	"net/http"

	usecase "saidify/internal/application/usecase"
	proddom "saidify/internal/domain/product"
)

// ProductHandler serves the back-office product CRUD.
//
// Routes:
//   - GET    /admin/products
//   - POST   /admin/products
//   - GET    /admin/products/{id}
//   - PUT    /admin/products/{id}
//   - DELETE /admin/products/{id}
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) http.Handler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "product handler is not configured")
		return
	}

	id := pathID(r.URL.Path, "/admin/products/")

	if id == "" {
		switch r.Method {
		case http.MethodGet:
			list, err := h.uc.List(r.Context(), r.URL.Query().Get("category"))
			if err != nil {
				internalError(w, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"products": list})
		case http.MethodPost:
			var body proddom.Product
			if err := readJSON(r, &body); err != nil {
				badRequest(w, "invalid json body")
				return
			}
			p, err := h.uc.Create(r.Context(), &body)
			if err != nil {
				badRequest(w, err.Error())
				return
			}
			writeJSON(w, http.StatusCreated, p)
		default:
			methodNotAllowed(w)
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := h.uc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, usecase.ErrProductNotFound) {
				notFound(w)
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		var body proddom.Product
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		body.ID = id
		p, err := h.uc.Update(r.Context(), &body)
		if err != nil {
			if errors.Is(err, usecase.ErrProductNotFound) {
				notFound(w)
				return
			}
			badRequest(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)

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
