package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/InkGacha_Go/internal/catalog"
	"github.com/osse101/InkGacha_Go/internal/handler"
	"github.com/osse101/InkGacha_Go/internal/logger"
	"github.com/osse101/InkGacha_Go/internal/metrics"
	"github.com/osse101/InkGacha_Go/internal/session"
)

type Server struct {
	httpServer     *http.Server
	sessionService session.Service
}

// NewServer creates a new Server instance
func NewServer(port int, db handler.Pinger, sessionService session.Service, pool *catalog.Catalog, now func() time.Time) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(db))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handler.HandleGetState(sessionService))
		r.Get("/history", handler.HandleGetHistory(sessionService))
		r.Get("/catalog", handler.HandleGetCatalog(pool))
		r.Get("/quote", handler.HandleGetQuote(now))

		r.Route("/draw", func(r chi.Router) {
			r.Post("/single", handler.HandleDrawSingle(sessionService))
			r.Post("/ten", handler.HandleDrawTen(sessionService))
			r.Post("/free", handler.HandleDrawFree(sessionService))
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Post("/synopsis", handler.HandleClaimSynopsis(sessionService))
			r.Post("/writing", handler.HandleClaimWriting(sessionService))
		})

		r.Post("/cards/select", handler.HandleSelectCard(sessionService))
		r.Post("/user/rename", handler.HandleRename(sessionService))

		r.Get("/export", handler.HandleExport(sessionService))
		r.Get("/export/points.csv", handler.HandlePointsCSV(sessionService))
		r.Get("/export/draws.csv", handler.HandleGachaCSV(sessionService))
		r.Post("/import", handler.HandleImport(sessionService))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		sessionService: sessionService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
