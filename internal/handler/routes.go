package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/contactd/contactd/internal/middleware"
)

// RouterConfig wires handlers and middleware settings into the route table.
type RouterConfig struct {
	Contacts       ContactService
	Health         *HealthHandler
	Metrics        *MetricsHandler
	Logger         *slog.Logger
	AllowedOrigins []string
	IsDevelopment  bool
	MaxBodySize    int64
}

// NewRouter builds the chi router serving the contact API.
func NewRouter(cfg RouterConfig) http.Handler {
	h := New()
	contacts := NewContactHandler(cfg.Contacts, cfg.Logger)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.AllowedOrigins

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment}))
	r.Use(middleware.CORS(corsCfg))

	r.Get("/", h.Index)
	if cfg.Health != nil {
		r.Get("/healthz", cfg.Health.Healthz)
		r.Get("/readyz", cfg.Health.Readyz)
	}
	if cfg.Metrics != nil {
		r.Get("/metrics", cfg.Metrics.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.MaxBodySize(cfg.MaxBodySize)).Post("/contact", contacts.Create())
		r.Get("/contacts", contacts.List())
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
