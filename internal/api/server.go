package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prakriti82/adobe-hackathon-round-1a/internal/batch"
	"github.com/prakriti82/adobe-hackathon-round-1a/internal/config"
	"github.com/prakriti82/adobe-hackathon-round-1a/internal/outline"
)

// Server is the HTTP surface of the outliner: upload a document, get
// its outline record back.
type Server struct {
	router chi.Router
	log    *slog.Logger
	cfg    config.Config
	opts   outline.Options
	stats  *batch.Stats
}

// NewServer creates and configures the HTTP server.
func NewServer(log *slog.Logger, cfg config.Config, opts outline.Options, stats *batch.Stats) *Server {
	s := &Server{
		log:   log,
		cfg:   cfg,
		opts:  opts,
		stats: stats,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// With no API key configured the rest of the surface is open;
	// the tool usually runs on a closed network.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/outline", s.handleOutline)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
