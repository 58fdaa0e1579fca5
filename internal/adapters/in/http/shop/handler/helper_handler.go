// internal/adapters/in/http/shop/handler/helper_handler.go
package shopHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ============================================================
// HTTP helpers (shared across shop handlers)
// ============================================================

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": strings.TrimSpace(msg)})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, "method_not_allowed")
}

func notFound(w http.ResponseWriter) {
	writeErr(w, http.StatusNotFound, "not_found")
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg)
}

func internalError(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusInternalServerError, msg)
}

func readJSON(r *http.Request, dst any) error {
	if dst == nil {
		return errors.New("dst is nil")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)) // 1MB
	return dec.Decode(dst)
}
