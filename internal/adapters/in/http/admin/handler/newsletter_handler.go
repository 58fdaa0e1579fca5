// internal/adapters/in/http/admin/handler/newsletter_handler.go
package adminHandler

import (
	"errors"
	"net/http"
	"strings"

	usecase "saidify/internal/application/usecase"
)

// NewsletterHandler serves the back-office subscriber list and campaign
// broadcast.
//
// Routes:
//   - GET  /admin/newsletter            → subscriber list
//   - POST /admin/newsletter/broadcast  → {"subject": ..., "body": ...}
type NewsletterHandler struct {
	uc *usecase.NewsletterUsecase
}

func NewNewsletterHandler(uc *usecase.NewsletterUsecase) http.Handler {
	return &NewsletterHandler{uc: uc}
}

type broadcastRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (h *NewsletterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "newsletter handler is not configured")
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	if strings.HasSuffix(path, "/broadcast") {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		var body broadcastRequest
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		sent, err := h.uc.Broadcast(r.Context(), body.Subject, body.Body)
		if err != nil {
			if errors.Is(err, usecase.ErrNewsletterInvalidArgument) {
				badRequest(w, "subject is required")
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"sent": sent})
		return
	}

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	list, err := h.uc.List(r.Context())
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"subscribers": list})
}
