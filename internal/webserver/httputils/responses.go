package httputils

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSONResponse writes status and, unless r is a HEAD request, body as JSON.
// Encoding failures are logged; the status has already been sent by then.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, body any) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if body == nil || r.Method == http.MethodHead {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode JSON response", "error", err.Error(), "path", r.URL.Path)
	}
}
