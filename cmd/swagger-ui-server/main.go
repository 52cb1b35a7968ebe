package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/austinwofford/swagger-ui-redist/internal/config"
	"github.com/austinwofford/swagger-ui-redist/internal/webserver"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("fatal error loading config", "error", err)
		os.Exit(1)
	}

	if cfg.DebugEnabled {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	ctx := context.Background()

	uiCfg, err := cfg.SwaggerUIConfig()
	if err != nil {
		logger.ErrorContext(ctx, "fatal error building swagger ui config", "error", err)
		os.Exit(1)
	}

	router, err := webserver.NewRouter(webserver.Config{
		CORSEnabled: cfg.CORSEnabled,
		SwaggerUI:   uiCfg,
	}, logger)
	if err != nil {
		logger.ErrorContext(ctx, "fatal error creating router", "error", err)
		os.Exit(1)
	}

	srv := webserver.NewHTTPServer(cfg.HTTPAddress, router)

	// err chan for server errors
	errCh := make(chan error, 1)

	go func() {
		logger.InfoContext(ctx, "starting webserver", "addr", cfg.HTTPAddress)
		errCh <- srv.ListenAndServe()
	}()

	// wait for signal or fatal listen error
	select {
	case sig := <-trap():
		logger.InfoContext(ctx, "shutdown signal received", "signal", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}

	// graceful shutdown
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	} else {
		logger.Info("server stopped")
	}
}

// trap returns a channel that receives OS shutdown signals
// so that we may gracefully shutdown
func trap() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	return ch
}
