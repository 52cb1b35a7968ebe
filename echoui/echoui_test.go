package echoui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/austinwofford/swagger-ui-redist/swaggerui"
)

func TestRegister(t *testing.T) {
	ui, err := swaggerui.New(swaggerui.Config{
		MountPath: "/docs",
		Sources:   []swaggerui.DocSource{{URL: "/openapi.json", Body: []byte(`{"openapi":"3.0.3"}`)}},
	})
	require.NoError(t, err)

	e := echo.New()
	Register(e, ui)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedType   string
	}{
		{name: "bare mount path", method: http.MethodGet, path: "/docs", expectedStatus: http.StatusOK, expectedType: "text/html; charset=utf-8"},
		{name: "trailing slash", method: http.MethodGet, path: "/docs/", expectedStatus: http.StatusOK, expectedType: "text/html; charset=utf-8"},
		{name: "asset", method: http.MethodGet, path: "/docs/swagger-ui-bundle.js", expectedStatus: http.StatusOK, expectedType: "text/javascript; charset=utf-8"},
		{name: "document", method: http.MethodHead, path: "/docs/openapi.json", expectedStatus: http.StatusOK, expectedType: "application/json"},
		{name: "unknown file", method: http.MethodGet, path: "/docs/nope.js", expectedStatus: http.StatusNotFound},
		{name: "outside mount path", method: http.MethodGet, path: "/swagger-ui.css", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedType != "" {
				assert.Equal(t, tt.expectedType, rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRegisterAtRoot(t *testing.T) {
	ui, err := swaggerui.New(swaggerui.Config{})
	require.NoError(t, err)

	e := echo.New()
	Register(e, ui)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
