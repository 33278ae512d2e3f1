package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/leadgenqc/courtier-assistant/internal/conversation"
	httpmiddleware "github.com/leadgenqc/courtier-assistant/internal/http/middleware"
	"github.com/leadgenqc/courtier-assistant/internal/leads"
	"github.com/leadgenqc/courtier-assistant/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *conversation.Handler
	LeadsHandler       *leads.Handler
	MetricsHandler     http.Handler
	WidgetJS           []byte
	CORSAllowedOrigins []string
	AdminToken         string
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
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Get("/", cfg.ChatHandler.Live)
	r.Get("/health", cfg.ChatHandler.Health)
	r.Post("/chat", cfg.ChatHandler.Chat)
	if len(cfg.WidgetJS) > 0 {
		r.Get("/widget.js", serveWidget(cfg.WidgetJS))
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Back-office endpoints
	if cfg.LeadsHandler != nil {
		r.Group(func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminToken(cfg.AdminToken))
			admin.Get("/admin/leads", cfg.LeadsHandler.List)
		})
	}

	return r
}

func serveWidget(widgetJS []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		_, _ = w.Write(widgetJS)
	}
}
