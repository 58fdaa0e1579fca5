// internal/adapters/in/http/admin/handler/category_handler.go
package adminHandler

import (
	"errors"
	"net/http"

	usecase "saidify/internal/application/usecase"
)

// CategoryHandler serves the back-office category CRUD.
//
// Routes:
//   - GET    /admin/categories
//   - POST   /admin/categories
//   - PUT    /admin/categories/{id}
//   - DELETE /admin/categories/{id}
type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) http.Handler {
	return &CategoryHandler{uc: uc}
}

type categoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "category handler is not configured")
		return
	}

	id := pathID(r.URL.Path, "/admin/categories/")

	if id == "" {
		switch r.Method {
		case http.MethodGet:
			list, err := h.uc.List(r.Context())
			if err != nil {
				internalError(w, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"categories": list})
		case http.MethodPost:
			var body categoryRequest
			if err := readJSON(r, &body); err != nil {
				badRequest(w, "invalid json body")
				return
			}
			c, err := h.uc.Create(r.Context(), body.Name, body.Image)
			if err != nil {
				badRequest(w, err.Error())
				return
			}
			writeJSON(w, http.StatusCreated, c)
		default:
			methodNotAllowed(w)
		}
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body categoryRequest
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		c, err := h.uc.Update(r.Context(), id, body.Name, body.Image)
		if err != nil {
			if errors.Is(err, usecase.ErrCategoryNotFound) {
				notFound(w)
				return
			}
			badRequest(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, c)

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
