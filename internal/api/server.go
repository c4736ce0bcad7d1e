// Package api serves the upload UI: a form page, one synchronous
// extraction per upload, and the rendered results with download links.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/clausegest/internal/config"
	"github.com/dgallion1/clausegest/internal/extract"
)

// ExtractFunc runs one document through the pipeline. It is a field so
// tests can substitute the extraction stage.
type ExtractFunc func(data []byte) (*extract.Result, error)

// Server is the HTTP upload UI server.
type Server struct {
	router  chi.Router
	extract ExtractFunc
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the upload server.
func NewServer(fn ExtractFunc, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		extract: fn,
		log:     log,
		cfg:     cfg,
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

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleUpload)

	s.router = r
}
