package api

import (
	"context"
	"net/http"
	_ "net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/registry"
)

// Server owns the HTTP listener and routes for the activities API.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

func NewServer(cfg config.ServerConfig, reg *registry.Registry, log logger.Logger, obs *observability.Observability, tracing *observability.Tracing) *Server {
	handlers := NewHandlers(reg, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /activities", Instrument("/activities", log, obs, tracing, handlers.ListActivities))
	mux.HandleFunc("POST /activities/{name}/signup", Instrument("/activities/{name}/signup", log, obs, tracing, handlers.Signup))
	mux.HandleFunc("DELETE /activities/{name}/unregister", Instrument("/activities/{name}/unregister", log, obs, tracing, handlers.Unregister))
	mux.HandleFunc("GET /{$}", handlers.Root)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		// The registry is seeded before the server starts, so ready
		// tracks liveness once construction has completed.
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// pprof registers on DefaultServeMux via its blank import.
	mux.Handle("GET /debug/pprof/", http.DefaultServeMux)

	// Prime the roster gauge so dashboards see seeded sizes before the
	// first mutation.
	for _, name := range reg.Names() {
		if size, ok := reg.RosterSize(name); ok {
			metrics.RosterSize.WithLabelValues(name).Set(float64(size))
		}
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      mux,
			ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
			WriteTimeout: config.GetDuration(cfg.WriteTimeout),
		},
		logger: log.WithFields(map[string]interface{}{"component": "server"}),
	}
}

// Handler exposes the routed mux for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests before closing the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
