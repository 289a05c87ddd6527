package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	partnerapp "github.com/shopledger/backend/internal/application/partner"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/config"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"github.com/shopledger/backend/internal/infrastructure/persistence"
	"github.com/shopledger/backend/internal/infrastructure/storage"
)

func main() {
	var (
		catalogPath string
		seed        uint64
		logLevel    string
		plan        Plan
	)

	flag.StringVar(&catalogPath, "catalog", "", "Load categories, products and suppliers from a YAML fixture instead of generating them")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0 picks a random one)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.IntVar(&plan.Categories, "categories", 6, "Categories to generate")
	flag.IntVar(&plan.Products, "products", 40, "Products to generate")
	flag.IntVar(&plan.Suppliers, "suppliers", 8, "Suppliers to generate")
	flag.IntVar(&plan.Purchases, "purchases", 120, "Purchases to generate")
	flag.IntVar(&plan.Orders, "orders", 200, "Orders to generate")
	flag.IntVar(&plan.PurchaseWindow, "days", 90, "Spread purchase dates over this many past days")
	flag.Parse()

	log, err := logger.New(&logger.Config{Level: logLevel, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	var fixture *Catalog
	if catalogPath != "" {
		fixture, err = LoadCatalog(catalogPath)
		if err != nil {
			log.Fatal("Failed to load catalog fixture", zap.Error(err))
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Invalid timezone", zap.Error(err))
	}

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database,
		logger.NewGormLogger(log, logger.MapGormLogLevel("warn")))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := shared.NewSystemClock(loc)
	seeder := NewSeeder(newServices(db, clock, log), clock, seed, log)

	var res *Result
	if fixture != nil {
		log.Info("Loading catalog fixture",
			zap.String("path", catalogPath),
			zap.Int("categories", len(fixture.Categories)),
			zap.Int("products", fixture.ProductCount()),
			zap.Int("suppliers", len(fixture.Suppliers)),
		)
		res, err = seeder.LoadCatalog(ctx, fixture)
	} else {
		log.Info("Generating demo data", zap.Uint64("seed", seed), zap.Any("plan", plan))
		res, err = seeder.Generate(ctx, plan)
	}
	if res != nil {
		log.Info("Seed summary",
			zap.Int("categories", res.Categories),
			zap.Int("products", res.Products),
			zap.Int("suppliers", res.Suppliers),
			zap.Int("purchases", res.Purchases),
			zap.Int("orders", res.Orders),
			zap.Int("customers", res.Customers),
		)
	}
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}

func newServices(db *persistence.Database, clock shared.Clock, log *zap.Logger) Services {
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	return Services{
		Categories: catalogapp.NewCategoryService(categoryRepo, productRepo),
		// Seeded products have no images
		Products:  catalogapp.NewProductService(productRepo, categoryRepo, storage.NewMemoryImageStorage(""), log),
		Suppliers: partnerapp.NewSupplierService(supplierRepo, purchaseRepo),
		Purchases: tradeapp.NewPurchaseService(purchaseRepo, productRepo, categoryRepo, supplierRepo, txScope, clock, log),
		Orders:    tradeapp.NewOrderService(orderRepo, txScope, log),
	}
}
