// internal/adapters/in/http/admin/handler/settings_handler.go
package adminHandler

import (
	"errors"
	"net/http"

	usecase "saidify/internal/application/usecase"
	settingsdom "saidify/internal/domain/sitesettings"
)

// SettingsHandler serves the back-office edit of the singleton
// storefront settings document.
//
// Routes:
//   - GET /admin/settings
//   - PUT /admin/settings
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

	switch r.Method {
	case http.MethodGet:
		s, err := h.uc.Get(r.Context())
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, s)

	case http.MethodPut:
		var body settingsdom.SiteSettings
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		s, err := h.uc.Update(r.Context(), &body)
		if err != nil {
			if errors.Is(err, settingsdom.ErrInvalidSettings) {
				badRequest(w, "siteName is required")
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, s)

	default:
		methodNotAllowed(w)
	}
}
