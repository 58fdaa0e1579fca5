// internal/adapters/in/http/shop/handler/newsletter_handler.go
package shopHandler

import (
	"errors"
	"net/http"

	usecase "saidify/internal/application/usecase"
	subdom "saidify/internal/domain/subscriber"
)

// NewsletterHandler serves the public subscribe/unsubscribe endpoint.
//
// Routes:
//   - POST   /shop/newsletter → subscribe {"email": ...}
//   - DELETE /shop/newsletter → unsubscribe {"email": ...}
type NewsletterHandler struct {
	uc *usecase.NewsletterUsecase
}

func NewNewsletterHandler(uc *usecase.NewsletterUsecase) http.Handler {
	return &NewsletterHandler{uc: uc}
}

type newsletterRequest struct {
	Email string `json:"email"`
}

func (h *NewsletterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		internalError(w, "newsletter handler is not configured")
		return
	}

	var body newsletterRequest
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	switch r.Method {
	case http.MethodPost:
		s, err := h.uc.Subscribe(r.Context(), body.Email)
		if err != nil {
			if errors.Is(err, subdom.ErrInvalidEmail) {
				badRequest(w, "invalid email")
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, s)

	case http.MethodDelete:
		if err := h.uc.Unsubscribe(r.Context(), body.Email); err != nil {
			if errors.Is(err, usecase.ErrNewsletterInvalidArgument) {
				badRequest(w, "invalid email")
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "unsubscribed"})

	default:
		methodNotAllowed(w)
	}
}
