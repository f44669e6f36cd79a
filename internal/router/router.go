// Package router assembles the full HTTP handling surface.
// Building a router has no side effects: nothing listens until the
// caller hands it to a server, so tests can drive it in-process.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/userhub/userhub/internal/config"
	"github.com/userhub/userhub/internal/handler"
	"github.com/userhub/userhub/internal/middleware"
	"github.com/userhub/userhub/internal/service"
)

// New configures the chi router with all routes and middleware.
// The process start time for /health uptime is captured here, once.
func New(cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	if origins := cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Static assets win over API routes and the 404 fallback
	r.Use(middleware.Static(cfg.StaticDir))

	// Handlers
	h := handler.New()
	fb := handler.NewFaultBoundary(logger)
	healthHandler := handler.NewHealthHandler(time.Now())
	userHandler := handler.NewUserHandler(service.NewUserService(), logger)

	r.Get("/health", fb.Wrap(healthHandler.Health))

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", fb.Wrap(userHandler.List))
		r.Post("/users", fb.Wrap(userHandler.Create))
	})

	// Everything unmatched shares the one 404 contract
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}
