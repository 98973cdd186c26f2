package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kenwpond/chatbot-backend/internal/assistant"
	"github.com/kenwpond/chatbot-backend/internal/config"
	"github.com/kenwpond/chatbot-backend/internal/llm"
	"github.com/kenwpond/chatbot-backend/internal/tutorial"
)

// Server is the HTTP API server for the tutorial chatbot.
type Server struct {
	router    chi.Router
	assistant *assistant.Service
	library   *tutorial.Library
	stats     *llm.Stats
	model     string
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(svc *assistant.Service, library *tutorial.Library, stats *llm.Stats, model string, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		assistant: svc,
		library:   library,
		stats:     stats,
		model:     model,
		log:       log,
		cfg:       cfg,
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
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// API endpoints; bearer auth only when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.ChatbotAPIKey != "" {
			r.Use(AuthMiddleware(s.cfg.ChatbotAPIKey, s.log))
		}

		r.Post("/api/ask", s.handleAsk)
		r.Get("/api/steps", s.handleListSteps)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
