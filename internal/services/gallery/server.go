// Package gallery serves a browsable picker for the icon registry.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/msricons/icons"
	"github.com/louisbranch/msricons/internal/platform/httpx"
	"github.com/louisbranch/msricons/internal/platform/timeouts"
)

// Config defines startup inputs for the gallery service.
type Config struct {
	HTTPAddr string
	// Registry defaults to icons.Default().
	Registry *icons.Registry
	Logger   *log.Logger
}

// Server hosts the gallery HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the gallery routes.
func NewHandler(cfg Config) http.Handler {
	registry := cfg.Registry
	if registry == nil {
		registry = icons.Default()
	}
	h := handlers{registry: registry}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /icons/{name}", h.icon)
	mux.HandleFunc("GET /api/icons", h.names)
	mux.HandleFunc("GET /static/icon.css", h.stylesheet)
	mux.HandleFunc("GET /sprite.svg", h.sprite)

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.Trace("gallery"),
		httpx.RequestLogger(cfg.Logger),
	)
}

// NewServer validates config and constructs a gallery server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gallery server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("gallery listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown gallery http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve gallery http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
