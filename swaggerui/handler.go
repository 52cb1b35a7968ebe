package swaggerui

import (
	"bytes"
	"errors"
	"net/http"
	"time"
)

// ServeHTTP serves the index page, assets and documents with GET and HEAD.
// Requests that don't resolve are passed to Config.NotFound.
func (s *SwaggerUI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	resp, err := s.Resolve(r.URL.Path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.notFound.ServeHTTP(w, r)
			return
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", resp.ContentType)
	h.Set("ETag", resp.ETag)
	h.Set("X-Content-Type-Options", "nosniff")

	// ServeContent handles HEAD, ranges and If-None-Match against the ETag.
	http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(resp.Body))
}
