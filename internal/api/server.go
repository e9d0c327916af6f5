// ABOUTME: HTTP API for rendering health summaries and browsing the run log.
// ABOUTME: Routes with gorilla/mux; CORS via rs/cors; request logging via slog.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/rs/cors"
)

const maxBodyBytes = 1 << 20

// Server serves the HTTP API.
type Server struct {
	repo    storage.Repository
	origins []string
	now     func() time.Time
}

// NewServer creates an API server over repo. Origins lists the CORS origins allowed.
func NewServer(repo storage.Repository, origins []string) *Server {
	return &Server{repo: repo, origins: origins, now: time.Now}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Routes stay on r so a method mismatch answers 405 rather than falling through to 404.
	r.HandleFunc("/v1/sample", s.handleSample).Methods(http.MethodGet)
	r.HandleFunc("/v1/summary", s.handleSummary).Methods(http.MethodPost)
	r.HandleFunc("/v1/runs", s.handleListRuns).Methods(http.MethodGet)
	r.HandleFunc("/v1/runs/{id}", s.handleGetRun).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(loggingMiddleware(r))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed", time.Since(start),
		)
	})
}
