// Package router assembles the HTTP surface of the dialogue service.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/studionexa/dance-orchestrator/internal/dialog"
	httpmiddleware "github.com/studionexa/dance-orchestrator/internal/http/middleware"
	"github.com/studionexa/dance-orchestrator/internal/leads"
	"github.com/studionexa/dance-orchestrator/internal/webchat"
	"github.com/studionexa/dance-orchestrator/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	DialogHandler      *dialog.Handler
	LeadsHandler       *leads.Handler
	WebchatHandler     *webchat.Handler
	MetricsHandler     http.Handler
	AdminAuthSecret    string
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	r.Use(resolveTenant())
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", cfg.DialogHandler.Health)
		public.Post("/api/message", cfg.DialogHandler.Message)
		if cfg.WebchatHandler != nil {
			public.Get("/ws/chat", cfg.WebchatHandler.Serve)
		}
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Admin routes (protected by HMAC JWT)
	if cfg.AdminAuthSecret != "" && cfg.LeadsHandler != nil {
		r.Route("/api/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
			admin.Get("/leads", cfg.LeadsHandler.List)
		})
	}

	return r
}
