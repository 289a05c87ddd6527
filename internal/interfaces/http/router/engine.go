package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/infrastructure/config"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"github.com/shopledger/backend/internal/interfaces/http/handler"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
)

// EngineConfig wires the cross-cutting HTTP concerns
type EngineConfig struct {
	ServiceName string
	Version     string
	Logger      *zap.Logger
	HTTP        config.HTTPConfig
	Swagger     middleware.SwaggerConfig
	Tracing     middleware.TracingConfig
	Profiling   middleware.ProfilingConfig
	// Metrics and RateLimiter are optional; nil disables them.
	Metrics      *middleware.HTTPMetrics
	RateLimiter  *middleware.RateLimiter
	HealthChecks map[string]handler.Pinger
}

// NewEngine builds the gin engine: middleware chain, system endpoints and the API routes
func NewEngine(cfg EngineConfig, h Handlers) (*gin.Engine, *Router, error) {
	middleware.SetupValidator()

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, nil, fmt.Errorf("trusted proxies: %w", err)
	}

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		middleware.TracingWithConfig(cfg.Tracing),
		middleware.TracingAttributeInjector(),
		middleware.SpanErrorMarker(),
	)
	if cfg.Metrics != nil {
		engine.Use(cfg.Metrics.Middleware())
	}
	engine.Use(
		middleware.ProfilingWithConfig(cfg.Profiling),
		middleware.CORSWithConfig(corsConfig(cfg.HTTP)),
		middleware.SecureWithConfig(middleware.DefaultSecurityConfig()),
	)

	system := handler.NewSystemHandler(cfg.ServiceName, cfg.Version, cfg.HealthChecks)
	engine.GET("/health", system.Health)
	engine.GET("/ping", system.Ping)
	if cfg.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := NewRouter(engine, WithAPIVersion("v1"))
	if cfg.RateLimiter != nil {
		r.Use(middleware.RateLimit(cfg.RateLimiter))
	}
	if cfg.HTTP.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	}
	r.Register(APIGroups(h, BodyLimits{
		MaxBodySize:   cfg.HTTP.MaxBodySize,
		MaxUploadSize: cfg.HTTP.MaxUploadSize,
	})...)
	r.Setup()

	return engine, r, nil
}

func corsConfig(cfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		cors.AllowOrigins = cfg.CORSAllowOrigins
	}
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	return cors
}
