// internal/adapters/in/http/shop/handler/settings_handler.go
package shopHandler

import (
	"net/http"

	usecase "saidify/internal/application/usecase"
)

// SettingsHandler serves the public storefront settings (banner text,
// contact info, shipping fee). GET only; edits go through /admin.
type SettingsHandler struct {
	uc *usecase.SettingsUsecase
}

func NewSettingsHandler(uc *usecase.SettingsUsecase) http.Handler {
	return &SettingsHandler{uc: uc}
}

func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "settings handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	s, err := h.uc.Get(r.Context())
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s)
}
