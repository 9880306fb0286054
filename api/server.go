// ABOUTME: HTTP server assembly: chi router, huma ops routes and the catch-all extraction handler
// ABOUTME: Owns the listener lifecycle with explicit start and graceful stop

package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"article-parser-api/api/handlers"
	"article-parser-api/api/middleware"
	"article-parser-api/core/interfaces"
	"article-parser-api/pkg/config"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger
}

// NewAPI creates the chi router with CORS and request logging, and the huma
// API mounted on it. The OpenAPI document is served at /openapi.json (plus
// its .yaml and -3.0 variants) and the docs page at /docs.
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// Preflight requests get CORS headers and continue to the extraction handler
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:     []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:     []string{middleware.RequestIDHeader},
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	humaConfig := huma.DefaultConfig("Article Parser API", "1.0.0")
	humaConfig.Info.Description = "Extracts readable articles from web pages and reads RSS/Atom/JSON feeds"
	// /schemas/* would otherwise shadow extraction on an unbounded prefix
	humaConfig.SchemasPath = ""

	api := humachi.New(router, humaConfig)

	return api, router
}

// Server is the long-lived HTTP listener of the process
type Server struct {
	api        huma.API
	router     chi.Router
	httpServer *http.Server
	logger     interfaces.Logger
}

// NewServer wires the ops routes and the extraction handler. Every request
// that no ops route claims, whatever its path or method, is an extraction.
func NewServer(cfg config.ServerConfig, extractor handlers.Extractor, logger interfaces.Logger) *Server {
	api, router := NewAPI(APIConfig{Logger: logger})

	handlers.NewHealthHandler().RegisterRoutes(api)

	extractHandler := handlers.NewExtractHandler(extractor, logger, handlers.ExtractOptions{
		ErrorDetail: cfg.ErrorDetail,
	})
	extractHandler.Document(api)

	endpoint := middleware.InFlightLimit(cfg.MaxInFlight, extractHandler.Fail)(extractHandler)
	router.Handle("/", endpoint)
	router.Handle("/*", endpoint)
	router.NotFound(endpoint.ServeHTTP)
	router.MethodNotAllowed(endpoint.ServeHTTP)

	return &Server{
		api:    api,
		router: router,
		logger: logger,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// API returns the huma API for registering further operations
func (s *Server) API() huma.API {
	return s.api
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start listens on the configured address and blocks until Stop is called
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", map[string]interface{}{
		"address": s.httpServer.Addr,
	})
	return ignoreClosed(s.httpServer.ListenAndServe())
}

// Serve accepts connections on ln and blocks until Stop is called
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("HTTP server starting", map[string]interface{}{
		"address": ln.Addr().String(),
	})
	return ignoreClosed(s.httpServer.Serve(ln))
}

// Stop gracefully shuts the server down, waiting for in-flight requests
// until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...", nil)
	return s.httpServer.Shutdown(ctx)
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
