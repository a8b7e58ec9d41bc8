package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/meur/blackout/internal/storage"
	"github.com/meur/blackout/internal/unlocks"
)

// Options configures the HTTP server
type Options struct {
	AllowedOrigins []string
	Unlocks        unlocks.Defaults
	Quiet          bool // Disable request logging
}

// Server holds the HTTP server dependencies
type Server struct {
	store    *storage.Store
	router   chi.Router
	defaults unlocks.Defaults
}

// New creates a new API server
func New(store *storage.Store, opts Options) *Server {
	s := &Server{
		store:    store,
		router:   chi.NewRouter(),
		defaults: opts.Unlocks,
	}

	s.setupMiddleware(opts)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(opts Options) {
	if !opts.Quiet {
		s.router.Use(middleware.Logger)
	}
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/catalog/surfaces", s.handleGetSurfaces)
		r.Get("/catalog/graffiti-types", s.handleGetGraffitiTypes)

		// Scoring
		r.Post("/rep/calculate", s.handleCalculateRep)
		r.Get("/ranks", s.handleGetRanks)
		r.Get("/ranks/{rep}", s.handleGetRankProgress)

		// Markers
		r.Get("/markers", s.handleListMarkers)
		r.Post("/markers", s.handleCreateMarker)
		r.Get("/markers/{id}", s.handleGetMarker)
		r.Put("/markers/{id}", s.handleUpdateMarker)
		r.Delete("/markers/{id}", s.handleDeleteMarker)
		r.Post("/markers/{id}/likes", s.handleAddLike)
		r.Delete("/markers/{id}/likes/{userID}", s.handleRemoveLike)
		r.Post("/markers/{id}/comments", s.handleAddComment)

		// Migration
		r.Get("/migrations/stats", s.handleMigrationStats)
		r.Post("/migrations/run", s.handleRunMigration)

		// Progression
		r.Get("/players/{userID}/progress", s.handlePlayerProgress)
		r.Get("/styles", s.handleGetStyles)
		r.Get("/tracks", s.handleGetTracks)
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
