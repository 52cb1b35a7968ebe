package webserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/austinwofford/swagger-ui-redist/internal/webserver/httputils"
	"github.com/austinwofford/swagger-ui-redist/swaggerui"
)

type Config struct {
	CORSEnabled bool
	SwaggerUI   swaggerui.Config
}

const (
	errTypeNotFound         = "not_found"
	errTypeMethodNotAllowed = "method_not_allowed"
)

func NewHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func NewRouter(cfg Config, logger *slog.Logger) (http.Handler, error) {
	uiCfg := cfg.SwaggerUI
	uiCfg.NotFound = http.HandlerFunc(notFound)

	ui, err := swaggerui.New(uiCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating swagger ui: %w", err)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(slogMiddleware(logger))

	if cfg.CORSEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONResponse(w, r, http.StatusOK, healthResponse{
			Status:           "ok",
			SwaggerUIVersion: swaggerui.Version,
		})
	})

	mount := ui.MountPath()
	if mount != "" {
		r.Handle(mount, ui)
	}
	r.Handle(mount+"/*", ui)

	logger.Info("swagger ui mounted", "mount_path", mount+"/", "swagger_ui_version", swaggerui.Version)

	return r, nil
}

type healthResponse struct {
	Status           string `json:"status"`
	SwaggerUIVersion string `json:"swagger_ui_version"`
}

func notFound(w http.ResponseWriter, r *http.Request) {
	httputils.WriteErrorResponse(w, r, httputils.ErrorResponse{
		Message:    "The requested resource was not found",
		Type:       errTypeNotFound,
		StatusCode: http.StatusNotFound,
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httputils.WriteErrorResponse(w, r, httputils.ErrorResponse{
		Message:    fmt.Sprintf("Method %s is not allowed", r.Method),
		Type:       errTypeMethodNotAllowed,
		StatusCode: http.StatusMethodNotAllowed,
	})
}
