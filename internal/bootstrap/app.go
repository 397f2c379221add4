package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/cache"
	"resume-matcher/internal/matching"
	"resume-matcher/internal/samples"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/server"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Cache           cache.Cache
	Engine          *matching.Engine
	Samples         *samples.Catalog
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	SampleHandler   *samples.Handler
	Health          *health.Service

	closers []func() error
}

// Build prepares shared dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	app := &App{Config: cfg}

	c, err := app.buildCache(ctx)
	if err != nil {
		return nil, err
	}
	app.Cache = c

	catalog, err := samples.Default()
	if err != nil {
		return nil, fmt.Errorf("load samples: %w", err)
	}
	app.Samples = catalog

	app.Engine = matching.New()
	app.AnalysesService = analyses.NewService(app.Engine, app.Cache, cfg.CacheTTL)
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, cfg.MaxBodyBytes, cfg.MaxUploadBytes)
	app.SampleHandler = samples.NewHandler(catalog)
	app.Health = health.NewService(app.Cache)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: app.AnalysisHandler,
		SampleHandler:   app.SampleHandler,
		Health:          app.Health,
		Limiter:         middleware.NewRateLimiter(nil),
	})

	return app, nil
}

func (a *App) buildCache(ctx context.Context) (cache.Cache, error) {
	switch a.Config.CacheBackend {
	case "redis":
		rc, err := cache.DialRedis(ctx, a.Config.RedisURL, a.Config.RedisConnectTimeout)
		if err != nil {
			if a.Config.IsProduction() {
				return nil, fmt.Errorf("connect redis cache: %w", err)
			}
			telemetry.Warn("bootstrap.redis_unavailable", map[string]any{
				"error":    err.Error(),
				"fallback": "memory",
			})
			return cache.NewMemory(a.Config.CacheMaxEntries, a.Config.CacheTTL), nil
		}
		a.closers = append(a.closers, rc.Close)
		return rc, nil
	case "none":
		return cache.Noop{}, nil
	default:
		return cache.NewMemory(a.Config.CacheMaxEntries, a.Config.CacheTTL), nil
	}
}

// Close releases connections opened by Build.
func (a *App) Close() error {
	var firstErr error
	for _, fn := range a.closers {
		if err := fn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
