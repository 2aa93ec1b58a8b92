package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/blockview/internal/adapter/http/handler"
	"github.com/iho/blockview/internal/adapter/http/middleware"
	"github.com/iho/blockview/internal/infrastructure/metrics"
	"github.com/iho/blockview/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	BlockHandler     *handler.BlockHandler
	HoldingHandler   *handler.HoldingHandler
	NetworkHandler   *handler.NetworkHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Metrics          *metrics.Metrics
	MetricsHandler   http.Handler
	Logger           zerolog.Logger
	AllowedOrigins   []string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.AllowedOrigins))
	}
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Viewer)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
		}

		r.Route("/networks", func(r chi.Router) {
			r.Get("/", cfg.NetworkHandler.List)
			r.Post("/", cfg.NetworkHandler.Save)
		})

		r.Route("/blocks", func(r chi.Router) {
			r.Post("/", cfg.BlockHandler.Create)
			r.Post("/batch", cfg.BlockHandler.CreateBatch)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireViewer)
				r.Get("/", cfg.BlockHandler.List)
				r.Get("/{id}", cfg.BlockHandler.Get)
			})
		})

		r.Route("/holdings", func(r chi.Router) {
			r.Use(middleware.RequireViewer)
			r.Get("/", cfg.HoldingHandler.List)
			r.Post("/", cfg.HoldingHandler.Create)
			r.Delete("/{id}", cfg.HoldingHandler.Delete)
		})
	})

	return r
}
