// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport (chi router).
  - Browser pages live under /books, the read-only JSON API under /api/v1.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/bookmanager/internal/core/book"
	"github.com/taibuivan/bookmanager/internal/core/language"
	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/internal/platform/config"
	"github.com/taibuivan/bookmanager/internal/platform/constants"
	"github.com/taibuivan/bookmanager/internal/platform/middleware"
	"github.com/taibuivan/bookmanager/internal/platform/respond"
	"github.com/taibuivan/bookmanager/internal/web"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all handler sets mounted by the server.
type Handlers struct {
	// Liveness is the /health handler; 200 while the process runs.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 when Postgres and Redis answer.
	Readiness http.HandlerFunc

	// Pages serves the browser pages under /books.
	Pages *web.Handler

	// Books serves the read-only book API.
	Books *book.Handler

	// Languages serves the language reference list.
	Languages *language.Handler
}

// # Server Initialization

// NewServer builds the router with the full middleware chain and registers
// every route group.
//
// The rate limiter's eviction loop runs until ctx is cancelled.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Run(ctx)

	return &Server{
		router: newRouter(cfg, log, limiter, h),
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

func newRouter(cfg *config.Config, log *slog.Logger, limiter *middleware.RateLimiter, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Middleware())
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Browser Pages
	r.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, "/books/", http.StatusFound)
	})
	r.Group(func(pages chi.Router) {
		pages.Use(middleware.Session(cfg.IsProduction()))
		pages.Mount("/books", h.Pages.Routes())
	})

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.CORS(cfg, cfg.AllowedOrigins))
		api.NotFound(func(writer http.ResponseWriter, request *http.Request) {
			respond.Error(writer, request, apperr.NotFound("Endpoint"))
		})
		api.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
			respond.Error(writer, request, apperr.MethodNotAllowed())
		})

		api.Mount("/books", h.Books.Routes())
		api.Mount("/languages", h.Languages.Routes())
	})

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.httpServer.Handler = s.router
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
