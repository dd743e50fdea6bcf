// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Access control lives in exactly one place, the request gate installed here.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/catalog/internal/chat"
	"github.com/taibuivan/catalog/internal/core/product"
	"github.com/taibuivan/catalog/internal/core/section"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/middleware"
	"github.com/taibuivan/catalog/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler and always returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler and returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login, logout and session lookup.
	Auth *auth.Handler

	// Section and Product serve the admin-managed catalog.
	Section *section.Handler
	Product *product.Handler

	// Chat proxies the storefront assistant.
	Chat *chat.Handler
}

// RouterOptions carries the cross-cutting policies of the middleware chain.
type RouterOptions struct {
	// Sessions resolves the session cookie for the request gate.
	Sessions middleware.SessionResolver

	// Origins decides which browser origins receive CORS headers.
	Origins middleware.OriginPolicy

	// TrustProxy honors client address headers set by a reverse proxy.
	TrustProxy bool

	RateLimitRPS   float64
	RateLimitBurst int
}

// # Router

// NewRouter constructs the chi router with the full middleware chain and
// registers all route groups.
//
// # Chain
//
//	RequestID → ClientIP → StructuredLogger → Metrics → RateLimit → PanicRecovery → CORS → Gate
//
// The gate reads the raw request path, so no path-rewriting middleware may run
// in front of it.
func NewRouter(ctx context.Context, log *slog.Logger, options RouterOptions, h Handlers) http.Handler {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.ClientIP(options.TrustProxy))
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(ctx, options.RateLimitRPS, options.RateLimitBurst))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(options.Origins))
	r.Use(middleware.Gate(options.Sessions, constants.SessionCookieName))

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// # Application API
	r.Group(func(bounded chi.Router) {
		bounded.Use(chimw.Timeout(constants.GlobalRequestTimeout))

		bounded.Mount(constants.AuthPathPrefix, h.Auth.Routes())
		bounded.Route(constants.APIPathPrefix, func(api chi.Router) {
			api.Route("/sections", h.Section.RegisterRoutes)
			api.Route("/products", h.Product.RegisterRoutes)
		})
	})

	// Streams are bounded by the server write timeout instead of chimw.Timeout.
	r.Mount("/api/chat", h.Chat.Routes())

	return r
}

// NewServer wraps the router into an [http.Server] listening on addr.
func NewServer(addr string, handler http.Handler, log *slog.Logger) *Server {
	return &Server{
		log: log,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
