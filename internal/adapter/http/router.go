package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dkotenko/gotransfer/internal/adapter/http/handler"
	"github.com/dkotenko/gotransfer/internal/adapter/http/middleware"
	"github.com/dkotenko/gotransfer/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransferHandler  *handler.TransferHandler
	HolderHandler    *handler.HolderHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Transfers
		r.Post("/transfers", cfg.TransferHandler.Create)

		// Aggregated balance across all accounts of a currency
		r.Get("/balance", cfg.TransferHandler.TotalBalance)

		// Holders
		r.Route("/holders", func(r chi.Router) {
			r.Get("/", cfg.HolderHandler.List)
			r.Get("/{id}", cfg.HolderHandler.Get)
		})

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/{id}", cfg.HolderHandler.GetAccount)
			r.Get("/{id}/entries", cfg.HolderHandler.ListEntries)
		})
	})

	return r
}
