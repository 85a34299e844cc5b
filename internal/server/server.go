package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/inquiry"
	"github.com/wassat/website/internal/page"
	"github.com/wassat/website/internal/site"
)

// Config holds server configuration.
type Config struct {
	Listen string
	// AllowedOrigins may call the JSON API cross-origin; "*" allows all.
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Deps are the feature handlers the server mounts. Nil entries are
// skipped.
type Deps struct {
	Registry  *page.Registry
	Catalog   *i18n.Catalog
	Inquiries *inquiry.Store
	Logger    *slog.Logger
}

// Server serves the website.
type Server struct {
	cfg        Config
	deps       Deps
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all routes mounted.
func New(cfg Config, deps Deps) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, deps: deps, logger: logger}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	if len(s.cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	// Health check
	r.Get("/healthz", s.handleHealth)

	var pages *page.Handler
	if s.deps.Registry != nil {
		pages = page.NewHandler(s.deps.Registry, s.logger)
		// Websockets outlive the request timeout.
		pages.RegisterSocketRoutes(r)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))

		if pages != nil {
			pages.RegisterRoutes(r)
		}
		if s.deps.Catalog != nil {
			r.Get("/locales/{lang}.json", s.handleLocale)
		}
		if s.deps.Inquiries != nil && s.deps.Catalog != nil {
			inquiry.RegisterRoutes(r, s.deps.Inquiries, inquiry.CatalogSubjects(s.deps.Catalog), s.logger)
		}
		r.Handle("/assets/*", http.StripPrefix("/assets", site.AssetHandler()))
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if s.deps.Registry != nil {
		body["pages"] = s.deps.Registry.Len()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}

// handleLocale serves a dictionary as it was loaded, for HTTP fetchers
// and the browser.
func (s *Server) handleLocale(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.ParseLanguage(chi.URLParam(r, "lang"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	dict, ok := s.deps.Catalog.Get(lang)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Write(dict.JSON())
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("website listening", "addr", s.cfg.Listen)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
