package httputils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
)

type ErrorResponse struct {
	// Message is a human-readable error message
	Message string `json:"message,omitempty"`

	// Type is a machine-readable error code
	Type string `json:"type,omitempty"`

	// StatusCode is the HTTP status code, defaults to 500
	StatusCode int `json:"-"`

	// Status is derived from StatusCode
	Status string `json:"http_status"`

	RequestID string `json:"request_id,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, r *http.Request, httpErr ErrorResponse) {
	if httpErr.StatusCode == 0 {
		httpErr.StatusCode = http.StatusInternalServerError
	}

	httpErr.Status = http.StatusText(httpErr.StatusCode)
	httpErr.RequestID = middleware.GetReqID(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.StatusCode)

	if r.Method == http.MethodHead {
		return
	}

	if err := json.NewEncoder(w).Encode(httpErr); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode JSON error response", "error", err.Error())
	}
}
