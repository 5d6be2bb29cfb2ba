// Package api serves a decoded achievements file over HTTP for inspection
// and editing.
//
// Routes (all JSON, X-API-Key protected when a key is configured):
//
//	GET    /api/v1/health
//	GET    /api/v1/achievements        ids and unlock state, file order
//	GET    /api/v1/achievements/{id}   full record, progress payload in hex
//	DELETE /api/v1/achievements/{id}   delete and rewrite the backing file
//	GET    /api/v1/stats               record count, encoded size
//
// Prometheus metrics are exposed unprotected at /metrics.
package api

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saveforge/achv/pkg/codec"
	"github.com/saveforge/achv/pkg/history"
)

// Server holds the API server state. The served File is shared between
// handlers, so every access goes through the mutex.
type Server struct {
	mu      sync.Mutex
	file    *codec.File
	history *history.Store
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server around an already-decoded file. hist
// and metrics may be nil, disabling snapshots and instrumentation.
func NewServer(file *codec.File, hist *history.Store, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		file:    file,
		history: hist,
		config:  config,
		metrics: metrics,
	}
}

// Routes builds the chi router for the server.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Unprotected, for scraping.
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if s.config.APIKey != "" {
			auth := apiKeyMiddleware(s.config.APIKey)
			if s.metrics != nil {
				auth = s.metrics.InstrumentAuthMiddleware(auth)
			}
			r.Use(auth)
		}

		r.Get("/health", s.handler("GET", "/api/v1/health", s.handleHealth))
		r.Get("/achievements", s.handler("GET", "/api/v1/achievements", s.handleListAchievements))
		r.Get("/achievements/{id}", s.handler("GET", "/api/v1/achievements/{id}", s.handleGetAchievement))
		r.Delete("/achievements/{id}", s.handler("DELETE", "/api/v1/achievements/{id}", s.handleDeleteAchievement))
		r.Get("/stats", s.handler("GET", "/api/v1/stats", s.handleStats))
	})

	return r
}

// handler wraps h with metrics instrumentation when metrics are configured.
func (s *Server) handler(method, endpoint string, h http.HandlerFunc) http.HandlerFunc {
	if s.metrics == nil {
		return h
	}
	return s.metrics.InstrumentHandler(method, endpoint, h)
}

// StartServer decodes the configured achievements file and serves it until
// the process exits.
func StartServer(config ServerConfig) error {
	metrics := NewMetrics()

	start := time.Now()
	data, err := os.ReadFile(config.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read achievements file: %w", err)
	}
	file, err := codec.Decode(data)
	metrics.RecordCodecOperation("decode", err == nil, time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to decode achievements file: %w", err)
	}
	metrics.UpdateFileStats(file.Len(), file.EncodedSize())

	var hist *history.Store
	if config.HistoryDir != "" {
		hist, err = history.Open(config.HistoryDir)
		if err != nil {
			return err
		}
		defer hist.Close()
	}

	server := NewServer(file, hist, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Serving %s (%d records) on %s\n", config.FilePath, file.Len(), addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	return http.ListenAndServe(addr, server.Routes())
}
