// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/videoventa-mx/videoventa/internal/admin"
	"github.com/videoventa-mx/videoventa/internal/catalog/client"
	"github.com/videoventa-mx/videoventa/internal/catalog/project"
	"github.com/videoventa-mx/videoventa/internal/platform/config"
	"github.com/videoventa-mx/videoventa/internal/platform/constants"
	"github.com/videoventa-mx/videoventa/internal/platform/middleware"
	"github.com/videoventa-mx/videoventa/internal/portal"
	"github.com/videoventa-mx/videoventa/internal/pricing"
	"github.com/videoventa-mx/videoventa/internal/siteconfig"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Admin handles the operator authentication gate.
	Admin *admin.Handler

	// SiteConfig serves and updates the singleton configuration document.
	SiteConfig *siteconfig.Handler

	// Pricing quotes narrated selections and singing packages.
	Pricing *pricing.Handler

	// Client manages customer records and the portal lookup.
	Client *client.Handler

	// Project manages production work items and deliverables.
	Project *project.Handler

	// Portal renders the ownership certificate.
	Portal *portal.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, sessions middleware.SessionVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.AdminSession(sessions))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		// Public configuration read; admin-gated write.
		api.Get("/config", h.SiteConfig.GetConfig)
		api.With(middleware.RequireAdmin).Put("/config", h.SiteConfig.UpdateConfig)

		// Public quotation engine.
		h.Pricing.RegisterRoutes(api)

		api.Route("/clients", func(clients chi.Router) {
			h.Client.RegisterRoutes(clients)
			clients.Get("/username/{username}/certificate", h.Portal.Certificate)
		})

		api.Route("/projects", func(projects chi.Router) {
			h.Project.RegisterRoutes(projects)
		})

		api.Route("/admin", func(adminRoutes chi.Router) {
			h.Admin.RegisterRoutes(adminRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
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
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
