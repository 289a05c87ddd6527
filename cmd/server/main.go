package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/shopledger/backend/docs"
	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	partnerapp "github.com/shopledger/backend/internal/application/partner"
	reportapp "github.com/shopledger/backend/internal/application/report"
	settlementapp "github.com/shopledger/backend/internal/application/settlement"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/cache"
	"github.com/shopledger/backend/internal/infrastructure/config"
	"github.com/shopledger/backend/internal/infrastructure/event"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"github.com/shopledger/backend/internal/infrastructure/migration"
	"github.com/shopledger/backend/internal/infrastructure/persistence"
	"github.com/shopledger/backend/internal/infrastructure/storage"
	"github.com/shopledger/backend/internal/infrastructure/telemetry"
	"github.com/shopledger/backend/internal/interfaces/http/handler"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
	"github.com/shopledger/backend/internal/interfaces/http/router"
)

//	@title			Shop Ledger API
//	@version		1.0
//	@description	Retail backend: catalog, orders, purchases, due settlement and sales reports.

//	@contact.name	API Support
//	@contact.url	https://github.com/shopledger/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Bootstrap logger for telemetry setup; replaced once the OTLP log core exists
	bootLog, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	log, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output},
		tel.LogCore(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Shop Ledger backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	if err := run(ctx, cfg, tel, log); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := tel.Shutdown(shutdownCtx); err != nil {
		log.Warn("Telemetry shutdown incomplete", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}

func run(ctx context.Context, cfg *config.Config, tel *telemetry.Telemetry, log *zap.Logger) error {
	loc, err := cfg.App.Location()
	if err != nil {
		return err
	}
	clock := shared.NewSystemClock(loc)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBName:          cfg.Database.DBName,
		TracerProvider:  tel.Tracer.Provider(),
	}, log); err != nil {
		return err
	}

	if err := migrate(db, log); err != nil {
		return err
	}

	stores, err := cache.NewFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.App.Env != "production"),
	).Create(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(); err != nil {
			log.Warn("Error closing cache stores", zap.Error(err))
		}
	}()

	images, err := newImageStorage(ctx, cfg, log)
	if err != nil {
		return err
	}

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	customerDirectory := persistence.NewGormCustomerDirectory(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	eventBus := event.NewInMemoryEventBus(log)

	// Services
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, images, log)
	productService.SetEventPublisher(eventBus)
	productService.SetImageURLExpiry(cfg.Storage.PresignExpiration)

	supplierService := partnerapp.NewSupplierService(supplierRepo, purchaseRepo)
	customerService := partnerapp.NewCustomerService(customerDirectory, orderRepo)

	txScope := persistence.NewGormTransactionScope(db.DB)
	orderService := tradeapp.NewOrderService(orderRepo, txScope, log)
	orderService.SetEventPublisher(eventBus)
	purchaseService := tradeapp.NewPurchaseService(purchaseRepo, productRepo, categoryRepo, supplierRepo, txScope, clock, log)
	purchaseService.SetEventPublisher(eventBus)

	settlementService := settlementapp.NewService(persistence.NewGormSettlementScope(db.DB), orderRepo, purchaseRepo, supplierRepo, log)
	settlementService.SetEventPublisher(eventBus)
	settlementService.SetIdempotencyStore(stores.Idempotency, cfg.Settlement.IdempotencyTTL)
	if tel.Meter.IsEnabled() {
		metrics, err := telemetry.NewSettlementMetrics(tel.Meter.Meter("shopledger/settlement"))
		if err != nil {
			return err
		}
		settlementService.SetMetrics(metrics)
	}

	reportService := reportapp.NewService(reportRepo, clock, stores.Reports, log)
	reportService.SetCacheTTL(cfg.Report.CacheTTL)

	invalidator := reportapp.NewCacheInvalidator(reportService, log)
	eventBus.Subscribe(invalidator, invalidator.EventTypes()...)
	if err := eventBus.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = eventBus.Stop(context.Background())
	}()

	// HTTP
	healthChecks := map[string]handler.Pinger{"database": db}
	if stores.Redis != nil {
		healthChecks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return stores.Redis.Ping(ctx).Err()
		})
	}

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
		go limiter.Run(ctx)
	}

	engine, _, err := router.NewEngine(router.EngineConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Version:     version,
		Logger:      log,
		HTTP:        cfg.HTTP,
		Swagger: middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		},
		Tracing: middleware.TracingConfig{
			Enabled:        tel.Tracer.IsEnabled(),
			ServiceName:    cfg.Telemetry.ServiceName,
			TracerProvider: tel.Tracer.Provider(),
		},
		Profiling: middleware.ProfilingConfig{
			Enabled:          cfg.Telemetry.ProfilingEnabled,
			SkipPaths:        middleware.DefaultProfilingConfig().SkipPaths,
			SkipPathPrefixes: middleware.DefaultProfilingConfig().SkipPathPrefixes,
		},
		Metrics:      middleware.NewHTTPMetrics("shopledger"),
		RateLimiter:  limiter,
		HealthChecks: healthChecks,
	}, router.Handlers{
		Category: handler.NewCategoryHandler(categoryService),
		Product:  handler.NewProductHandler(productService),
		Supplier: handler.NewSupplierHandler(supplierService, settlementService),
		Customer: handler.NewCustomerHandler(customerService, settlementService),
		Order:    handler.NewOrderHandler(orderService),
		Purchase: handler.NewPurchaseHandler(purchaseService),
		Report:   handler.NewReportHandler(reportService),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(db *persistence.Database, log *zap.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	m, err := migration.New(sqlDB, log)
	if err != nil {
		return err
	}
	// Closing the migrator would close sqlDB, which the server still uses.
	return m.Up()
}

func newImageStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (catalogapp.ImageStorage, error) {
	if !cfg.Storage.Enabled {
		log.Info("Object storage disabled, keeping product images in memory")
		return storage.NewMemoryImageStorage(cfg.Storage.PublicBaseURL), nil
	}
	return storage.NewS3ImageStorage(ctx, &cfg.Storage,
		storage.WithLogger(log),
		storage.WithPresignExpiration(cfg.Storage.PresignExpiration),
	)
}
