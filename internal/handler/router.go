package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jackpotai/web/internal/assets"
	"github.com/jackpotai/web/internal/metrics"
	"github.com/jackpotai/web/internal/middleware"
	"github.com/jackpotai/web/internal/service"
)

// RouterConfig carries the dependencies of the HTTP router.
type RouterConfig struct {
	Service *service.SiteService
	Logger  *slog.Logger
	// Metrics records rate-limited redirects and backs /metrics.
	Metrics interface {
		metrics.Recorder
		metrics.Snapshotter
	}
	// Cache is nil when Redis is not configured.
	Cache HealthChecker
	// Limiter is nil when Redis is not configured.
	Limiter       middleware.IPLimiter
	RedirectRPS   int
	RedirectBurst int
	IsDevelopment bool
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	h := New(cfg.Service, cfg.Logger)
	healthHandler := NewHealthHandler(cfg.Service.Site().Version, cfg.Cache)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger, http.HandlerFunc(h.InternalError)))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment}))
	r.Use(chimiddleware.Compress(5, "text/html", "text/css", "text/plain", "application/xml", "image/svg+xml"))
	r.Use(chimiddleware.StripSlashes)
	r.Use(chimiddleware.GetHead)

	// Operational endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	if cfg.Metrics != nil {
		r.Get("/metrics", NewMetricsHandler(cfg.Metrics).Metrics)
	}

	// Crawlers
	r.Get("/robots.txt", h.Robots)
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/sitemap-{n:[0-9]+}.xml", h.Sitemap)

	r.Handle("/static/*", Static("/static/", assets.FS(), http.HandlerFunc(h.NotFound)))

	for _, page := range cfg.Service.Site().Pages {
		r.Get(page.Path, h.Page)
	}

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  cfg.Logger,
		Limiter: cfg.Limiter,
		RPS:     cfg.RedirectRPS,
		Burst:   cfg.RedirectBurst,
	}
	if cfg.Metrics != nil {
		rateLimitCfg.OnLimited = func(*http.Request) { cfg.Metrics.IncRedirectRateLimited() }
	}
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitIP(rateLimitCfg))
		for _, redirect := range cfg.Service.Redirects() {
			r.Get(redirect.From, h.Redirect)
		}
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
