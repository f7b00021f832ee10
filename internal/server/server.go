package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/HeroTracker_Go/internal/database"
	"github.com/osse101/HeroTracker_Go/internal/handler"
	"github.com/osse101/HeroTracker_Go/internal/logger"
	"github.com/osse101/HeroTracker_Go/internal/metrics"
	"github.com/osse101/HeroTracker_Go/internal/sse"
	"github.com/osse101/HeroTracker_Go/internal/tracker"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	CurveName      string
	Events         *sse.Hub // nil disables the event stream
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	service    tracker.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, service tracker.Service) *Server {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts, dbPool, service),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	if opts.Events != nil {
		// Open streams never go idle; closing the hub ends them so Shutdown can finish.
		httpServer.RegisterOnShutdown(opts.Events.Stop)
	}

	return &Server{
		httpServer: httpServer,
		dbPool:     dbPool,
		service:    service,
	}
}

// NewRouter builds the middleware stack and routes.
// Chi middleware executes in the order defined, outermost first.
func NewRouter(opts Options, dbPool database.Pool, service tracker.Service) http.Handler {
	handler.InitValidator()

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.CurveName))
	r.Handle("/metrics", promhttp.Handler())

	xp := handler.NewXPHandler(service.Table())
	th := handler.NewTrackerHandler(service)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/xp", func(r chi.Router) {
			r.Get("/curve", xp.HandleGetCurve)
			r.Get("/level", xp.HandleGetLevel)
			r.Get("/required", xp.HandleGetRequired)
			r.Post("/total", xp.HandlePostTotal)
			r.Get("/goal", xp.HandleGetGoal)
		})

		r.Get("/heroes", th.HandleListHeroes)
		r.Route("/heroes/{heroKey}", func(r chi.Router) {
			r.Get("/", th.HandleGetHero)
			r.Put("/", th.HandleUpsertHero)
			r.Delete("/", th.HandleDeleteHero)

			r.Route("/badges/{badgeKey}", func(r chi.Router) {
				r.Put("/", th.HandleUpsertBadge)
				r.Patch("/", th.HandleSetBadgeLevel)
				r.Delete("/", th.HandleRemoveBadge)
			})

			r.Put("/goal", th.HandleSetHeroGoal)
			r.Delete("/goal", th.HandleClearHeroGoal)
		})

		r.Put("/goal", th.HandleSetGlobalGoal)
		r.Delete("/goal", th.HandleClearGlobalGoal)
		r.Get("/summary", th.HandleGetSummary)
		r.Get("/achievements", th.HandleGetAchievements)

		if opts.Events != nil {
			r.Get("/events", sse.Handler(opts.Events))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics")
}

// loggingMiddleware tags each request with an id and logs its start and end.
// Probe and scrape paths are skipped.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

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

// Start blocks serving HTTP until the server is stopped
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests, then shuts the tracker service down
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	return s.service.Shutdown(ctx)
}
