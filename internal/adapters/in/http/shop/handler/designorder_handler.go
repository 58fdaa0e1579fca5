// internal/adapters/in/http/shop/handler/designorder_handler.go
package shopHandler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"saidify/internal/adapters/in/http/middleware"
	usecase "saidify/internal/application/usecase"
	dodom "saidify/internal/domain/designorder"
)

// maxAssetUploadSize bounds a single design asset upload.
const maxAssetUploadSize = 10 << 20 // 10MB

// DesignOrderHandler serves the design studio endpoints.
//
// Routes (all authenticated):
//   - POST /shop/design-orders        → submit a design
//   - GET  /shop/design-orders        → list caller's designs
//   - GET  /shop/design-orders/{id}   → detail (owner only)
//   - POST /shop/design-assets        → multipart image upload, returns {"url": ...}
type DesignOrderHandler struct {
	uc *usecase.DesignOrderUsecase
}

func NewDesignOrderHandler(uc *usecase.DesignOrderUsecase) http.Handler {
	return &DesignOrderHandler{uc: uc}
}

type createDesignOrderRequest struct {
	BlankID       string        `json:"blankId"`
	SelectedColor string        `json:"selectedColor"`
	SelectedSize  string        `json:"selectedSize"`
	Layers        []dodom.Layer `json:"layers"`
}

func (h *DesignOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "design order handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	// asset upload
	if strings.HasSuffix(path, "/shop/design-assets") {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		h.handleUpload(w, r, uid)
		return
	}

	// detail: /shop/design-orders/{id}
	if i := strings.Index(path, "/shop/design-orders/"); i >= 0 {
		id := strings.TrimSpace(path[i+len("/shop/design-orders/"):])
		if id == "" {
			notFound(w)
			return
		}
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		d, err := h.uc.Get(r.Context(), uid, id, false)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrDesignOrderNotFound):
				notFound(w)
			case errors.Is(err, usecase.ErrDesignOrderForbidden):
				writeErr(w, http.StatusForbidden, "forbidden")
			default:
				internalError(w, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusOK, d)
		return
	}

	switch r.Method {
	case http.MethodGet:
		list, err := h.uc.ListMine(r.Context(), uid)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"designOrders": list})

	case http.MethodPost:
		var body createDesignOrderRequest
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		d, err := h.uc.Create(r.Context(), uid, body.BlankID, body.SelectedColor, body.SelectedSize, body.Layers)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrBlankNotFound):
				badRequest(w, "unknown blank product")
			case errors.Is(err, dodom.ErrInvalidLayer),
				errors.Is(err, dodom.ErrUnknownLayer),
				errors.Is(err, dodom.ErrInvalidViewRef),
				errors.Is(err, usecase.ErrDesignOrderInvalidArgument):
				badRequest(w, err.Error())
			default:
				internalError(w, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusCreated, d)

	default:
		methodNotAllowed(w)
	}
}

func (h *DesignOrderHandler) handleUpload(w http.ResponseWriter, r *http.Request, uid string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAssetUploadSize)
	if err := r.ParseMultipartForm(maxAssetUploadSize); err != nil {
		badRequest(w, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "missing file field")
		return
	}
	defer file.Close()

	ext := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	url, err := h.uc.UploadAsset(r.Context(), uid, ext, file)
	if err != nil {
		if errors.Is(err, usecase.ErrDesignOrderInvalidArgument) {
			badRequest(w, err.Error())
			return
		}
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
