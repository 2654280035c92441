package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/fit365/internal/importer"
	"github.com/claude/fit365/internal/session"
	"github.com/claude/fit365/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db       *storage.DB
	sessions *session.Manager
	importer *importer.Importer
	log      *slog.Logger
	apiKey   string
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, sessions *session.Manager, imp *importer.Importer, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:       db,
		sessions: sessions,
		importer: imp,
		log:      log,
		apiKey:   apiKey,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Import endpoint (API key required)
	s.router.Route("/api/v1/import", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleImport)
	})

	// App API endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/plans", s.handleListPlans)
	s.router.Get("/api/v1/plans/{id}", s.handleGetPlan)
	s.router.Post("/api/v1/onboarding", s.handleOnboarding)
	s.router.Get("/api/v1/profile", s.handleGetProfile)
	s.router.Get("/api/v1/plan", s.handleGetSelectedPlan)
	s.router.Get("/api/v1/workout-day", s.handleWorkoutDay)

	s.router.Post("/api/v1/sessions", s.handleStartSession)
	s.router.Get("/api/v1/sessions/{id}", s.handleSessionSnapshot)
	s.router.Post("/api/v1/sessions/{id}/events", s.handleSessionEvent)
	s.router.Delete("/api/v1/sessions/{id}", s.handleAbandonSession)

	s.router.Get("/api/v1/progress", s.handleQueryProgress)
	s.router.Get("/api/v1/progress/{date}", s.handleGetProgress)
	s.router.Put("/api/v1/progress/{date}/habits", s.handleUpdateHabits)
	s.router.Get("/api/v1/history", s.handleGetHistory)

	s.router.Get("/api/v1/metrics", s.handleQueryMetrics)
	s.router.Post("/api/v1/metrics", s.handleSaveMetric)

	s.router.Get("/api/v1/todos", s.handleListTodos)
	s.router.Post("/api/v1/todos", s.handleUpsertTodo)
	s.router.Delete("/api/v1/todos/{id}", s.handleDeleteTodo)

	s.router.Get("/api/v1/settings/theme", s.handleGetTheme)
	s.router.Put("/api/v1/settings/theme", s.handleSetTheme)
}
