// Package api serves trajectory calculations over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gehtsoft-usa/go_shotcalc/internal/config"
	"github.com/gehtsoft-usa/go_shotcalc/internal/metrics"
	"github.com/gehtsoft-usa/go_shotcalc/internal/storage"
)

// RunStore keeps the history of the calculations.
type RunStore interface {
	SaveRun(r storage.Run) (storage.Run, error)
	RecentRuns(limit int) ([]storage.Run, error)
	GetRun(id uint) (storage.Run, error)
	Ping() error
}

// Deps are the optional dependencies of the server.
type Deps struct {
	Store        RunStore // nil disables the run history
	HistoryLimit int
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a configured HTTP server.
func NewServer(addr string, logger *slog.Logger, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewHandler(logger, deps),
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// NewHandler builds the routes and the middleware chain.
func NewHandler(logger *slog.Logger, deps Deps) http.Handler {
	if deps.HistoryLimit < 1 {
		deps.HistoryLimit = config.DefaultHistoryLimit
	}
	h := &handlers{logger: logger, store: deps.Store, historyLimit: deps.HistoryLimit}

	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("GET /healthz", healthz)
	mux.HandleFunc("GET /readyz", h.readyz)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /api/v1/options", options)
	mux.HandleFunc("POST /api/v1/trajectory", h.trajectory)
	mux.HandleFunc("POST /api/v1/trajectory/export", h.export)
	mux.HandleFunc("POST /api/v1/trajectory/chart", h.chart)
	mux.HandleFunc("GET /api/v1/runs", h.runs)
	mux.HandleFunc("GET /api/v1/runs/{id}", h.run)

	return metrics.Middleware(accessLog(logger)(mux))
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// quietPaths are polled by probes and scrapers and log at debug level.
var quietPaths = map[string]bool{"/healthz": true, "/readyz": true, "/metrics": true}

func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := metrics.NewStatusRecorder(w)
			next.ServeHTTP(sr, r)

			level := slog.LevelInfo
			if quietPaths[r.URL.Path] {
				level = slog.LevelDebug
			}
			if sr.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sr.Status,
				"elapsed", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
