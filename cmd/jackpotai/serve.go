package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackpotai/web/internal/cache"
	"github.com/jackpotai/web/internal/handler"
	"github.com/jackpotai/web/internal/metrics"
	"github.com/jackpotai/web/internal/model"
	"github.com/jackpotai/web/internal/render"
	"github.com/jackpotai/web/internal/server"
	"github.com/jackpotai/web/internal/service"
)

const redisPingTimeout = 2 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				c.cfg.AppPort = port
			}
			return c.serve(cmd)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "listen port (overrides APP_PORT)")

	return cmd
}

func (c *cli) serve(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, logger := c.cfg, c.logger

	site, renderer, err := c.loadSite("")
	if err != nil {
		return err
	}

	redisCache, err := c.connectRedis(ctx)
	if err != nil {
		return err
	}

	srv := server.New(c.newRouter(site, renderer, redisCache), server.Options{
		Port:              cfg.AppPort,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
	}, logger)

	if redisCache != nil {
		srv.OnShutdown("redis", func(context.Context) error {
			return redisCache.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"site_url", site.URL,
		"env", cfg.AppEnv,
	)

	return srv.Run(ctx)
}

// connectRedis returns nil when no Redis is configured. A Redis that does
// not answer at startup is kept: the page cache and the redirect limiter
// fail open and /readyz reports degraded until it comes back.
func (c *cli) connectRedis(ctx context.Context) (*cache.Cache, error) {
	if !c.cfg.HasRedis() {
		return nil, nil
	}

	redisCache, err := cache.Dial(c.cfg.RedisURL)
	if err != nil {
		c.logger.Error(
			"invalid Redis URL",
			slog.String("error", sanitizeError(err, c.cfg.RedisURL)),
			slog.String("redis_url", redactURL(c.cfg.RedisURL)),
		)
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		c.logger.Warn(
			"Redis unreachable, serving without cache",
			slog.String("error", sanitizeError(err, c.cfg.RedisURL)),
			slog.String("redis_url", redactURL(c.cfg.RedisURL)),
		)
		return redisCache, nil
	}

	c.logger.Info("connected to Redis")
	return redisCache, nil
}

// newRouter wires the site service and HTTP routes. redisCache may be nil.
func (c *cli) newRouter(site *model.Site, renderer *render.Renderer, redisCache *cache.Cache) http.Handler {
	cfg := c.cfg
	recorder := metrics.NewInMemory()

	var (
		pageCache service.PageCache
		health    handler.HealthChecker
	)
	if redisCache != nil {
		pageCache, health = redisCache, redisCache
	}

	svc := service.NewSiteService(site, renderer, pageCache, recorder, c.logger, service.Settings{
		PageCacheTTL: cfg.PageCacheTTL,
		SitemapSize:  cfg.SitemapSize,
	})

	routerCfg := handler.RouterConfig{
		Service:       svc,
		Logger:        c.logger,
		Metrics:       recorder,
		Cache:         health,
		RedirectRPS:   cfg.RateLimitRedirectRPS,
		RedirectBurst: cfg.RateLimitRedirectBurst,
		IsDevelopment: cfg.IsDevelopment(),
	}
	if redisCache != nil {
		routerCfg.Limiter = redisCache
	}

	return handler.NewRouter(routerCfg)
}
