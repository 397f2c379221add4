package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/samples"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

const (
	rateLimitGroupAnalyze = "ANALYZE"
	rateLimitGroupDefault = "DEFAULT"
)

// RouterDeps carries handlers built by bootstrap.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	SampleHandler   *samples.Handler
	Health          *health.Service
	// Limiter is shared across requests; nil builds a fresh one.
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:        rateLimitRules(deps.Config),
			DefaultGroup: rateLimitGroupDefault,
			GroupFor:     rateLimitGroup,
			Limiter:      deps.Limiter,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.SampleHandler != nil {
		deps.SampleHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitRules(cfg config.Config) map[string]middleware.RateLimitRule {
	rules := map[string]middleware.RateLimitRule{}
	if cfg.RateLimitAnalyzeRPS > 0 && cfg.RateLimitAnalyzeBurst > 0 {
		rules[rateLimitGroupAnalyze] = middleware.RateLimitRule{Rate: cfg.RateLimitAnalyzeRPS, Burst: cfg.RateLimitAnalyzeBurst}
	}
	if cfg.RateLimitDefaultRPS > 0 && cfg.RateLimitDefaultBurst > 0 {
		rules[rateLimitGroupDefault] = middleware.RateLimitRule{Rate: cfg.RateLimitDefaultRPS, Burst: cfg.RateLimitDefaultBurst}
	}
	return rules
}

// rateLimitGroup puts the analysis endpoints in the stricter bucket.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return rateLimitGroupDefault
	}
	switch c.FullPath() {
	case "/api/v1/analyses", "/api/v1/analyses/upload", "/api/v1/resumes/extract":
		return rateLimitGroupAnalyze
	default:
		return rateLimitGroupDefault
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
