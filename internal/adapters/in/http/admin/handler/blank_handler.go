// internal/adapters/in/http/admin/handler/blank_handler.go
package adminHandler

import (
	"errors"
	"net/http"

	usecase "saidify/internal/application/usecase"
	blankdom "saidify/internal/domain/blankproduct"
)

// BlankHandler serves the back-office CRUD for design-studio blanks
// (mockup views and print zones included).
//
// Routes:
//   - GET    /admin/blanks
//   - POST   /admin/blanks
//   - GET    /admin/blanks/{id}
//   - PUT    /admin/blanks/{id}
//   - DELETE /admin/blanks/{id}
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

	id := pathID(r.URL.Path, "/admin/blanks/")

	if id == "" {
		switch r.Method {
		case http.MethodGet:
			list, err := h.uc.List(r.Context())
			if err != nil {
				internalError(w, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"blanks": list})
		case http.MethodPost:
			var body blankdom.BlankProduct
			if err := readJSON(r, &body); err != nil {
				badRequest(w, "invalid json body")
				return
			}
			b, err := h.uc.Create(r.Context(), &body)
			if err != nil {
				badRequest(w, err.Error())
				return
			}
			writeJSON(w, http.StatusCreated, b)
		default:
			methodNotAllowed(w)
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
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

	case http.MethodPut:
		var body blankdom.BlankProduct
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		body.ID = id
		b, err := h.uc.Update(r.Context(), &body)
		if err != nil {
			if errors.Is(err, usecase.ErrBlankNotFound) {
				notFound(w)
				return
			}
			badRequest(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, b)

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
