// Package handler implements the HTTP handlers for the Trip Journal API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, entry.go, export.go) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/spec"
	"github.com/pkordes/trip-journal/web"
)

// EntryServicer defines the business operations the entry handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the filesystem or service layer.
type EntryServicer interface {
	Create(ctx context.Context, in domain.EntryInput) (domain.Entry, []string, error)
	List(ctx context.Context) ([]domain.Entry, error)
	Suggestions(ctx context.Context) ([]string, error)
	Progress(ctx context.Context) (domain.Progress, error)
	Preferences(ctx context.Context) (domain.Preferences, error)
	Window() domain.TripWindow
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server serves every API endpoint plus the embedded client view.
type Server struct {
	entries EntryServicer
	export  ExportServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(entries EntryServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{entries: entries, export: export, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes registers every endpoint on a fresh chi router.
//
//	GET  /healthz          liveness
//	GET  /openapi.yaml     API description
//	GET  /api/entries      all entries, oldest first
//	POST /api/entries      submit today's entry
//	GET  /api/suggestions  suggestions for the latest entry
//	GET  /api/progress     trip day counters
//	GET  /api/preferences  liked/disliked tallies
//	GET  /api/export       flat export (?format=csv|json)
//	GET  /*                client view
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/entries", s.ListEntries)
		r.Post("/entries", s.CreateEntry)
		r.Get("/suggestions", s.GetSuggestions)
		r.Get("/progress", s.GetProgress)
		r.Get("/preferences", s.GetPreferences)
		r.Get("/export", s.GetExport)
	})

	r.Handle("/*", http.FileServerFS(web.Assets))
	return r
}

// serveOpenAPI writes the embedded API description.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
