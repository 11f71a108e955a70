package api

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/liveeditor/live-editor/internal/api/handler"
	apimw "github.com/liveeditor/live-editor/internal/api/middleware"
	"github.com/liveeditor/live-editor/internal/config"
	"github.com/liveeditor/live-editor/internal/metrics"
	"github.com/liveeditor/live-editor/internal/ratelimiter"
)

// Options carries everything NewRouter needs beyond config.
type Options struct {
	// HealthPath is where the liveness probe is mounted.
	HealthPath string
	// Webapp holds the web application assets; nil mounts no asset routes.
	Webapp fs.FS
	// Limiter throttles asset requests only; nil is unlimited.
	Limiter *ratelimiter.Limiter

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer) // recover panics, return 500; http.ErrAbortHandler passes through
	r.Use(chimw.RealIP)    // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.GetHead)   // HEAD runs the GET handler, net/http drops the body
	r.Use(apimw.RequestID)
	r.Use(apimw.RequestLogger(opts.Logger, opts.HealthPath))
	r.Use(apimw.Instrument(opts.Metrics))

	hh := handler.NewHealthHandler()

	// --- probes and scrape endpoint: never throttled ---
	r.Get(opts.HealthPath, hh.Health)
	r.Handle(config.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	// --- web application ---
	if opts.Webapp != nil {
		r.Group(func(r chi.Router) {
			r.Use(apimw.RateLimit(opts.Limiter))
			r.Get("/*", handler.NewWebappHandler(opts.Webapp).ServeHTTP)
		})
	}

	return r
}
