//go:build integration

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	partnerapp "github.com/shopledger/backend/internal/application/partner"
	reportapp "github.com/shopledger/backend/internal/application/report"
	settlementapp "github.com/shopledger/backend/internal/application/settlement"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/cache"
	"github.com/shopledger/backend/internal/infrastructure/config"
	"github.com/shopledger/backend/internal/infrastructure/event"
	"github.com/shopledger/backend/internal/infrastructure/persistence"
	"github.com/shopledger/backend/internal/infrastructure/storage"
	"github.com/shopledger/backend/internal/interfaces/http/handler"
	"github.com/shopledger/backend/internal/interfaces/http/router"
	"github.com/shopledger/backend/tests/testutil"
)

// TestServer is the whole API wired to a real database
type TestServer struct {
	DB     *gorm.DB
	API    *testutil.APIClient
	Events *testutil.RecordingEventHandler
	Stores *cache.Stores
}

// NewTestServer wires repositories, services and the HTTP engine the way the server binary does
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db := NewTestDB(t)
	clock := shared.NewSystemClock(nil)
	stores := cache.NewFactory(config.RedisConfig{}).InMemory()
	t.Cleanup(func() { _ = stores.Close() })

	categoryRepo := persistence.NewGormCategoryRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	supplierRepo := persistence.NewGormSupplierRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	purchaseRepo := persistence.NewGormPurchaseRepository(db)
	txScope := persistence.NewGormTransactionScope(db)

	bus := event.NewInMemoryEventBus(nil)
	recorder := testutil.NewRecordingEventHandler()

	productService := catalogapp.NewProductService(productRepo, categoryRepo, storage.NewMemoryImageStorage("http://images.test"), nil)
	productService.SetEventPublisher(bus)
	orderService := tradeapp.NewOrderService(orderRepo, txScope, nil)
	orderService.SetEventPublisher(bus)
	purchaseService := tradeapp.NewPurchaseService(purchaseRepo, productRepo, categoryRepo, supplierRepo, txScope, clock, nil)
	purchaseService.SetEventPublisher(bus)
	settlementService := settlementapp.NewService(persistence.NewGormSettlementScope(db), orderRepo, purchaseRepo, supplierRepo, nil)
	settlementService.SetEventPublisher(bus)
	settlementService.SetIdempotencyStore(stores.Idempotency, 0)
	reportService := reportapp.NewService(persistence.NewGormReportRepository(db), clock, stores.Reports, nil)

	invalidator := reportapp.NewCacheInvalidator(reportService, nil)
	bus.Subscribe(invalidator, invalidator.EventTypes()...)
	bus.Subscribe(recorder, allEventTypes...)
	require.NoError(t, bus.Start(context.Background()))

	engine, _, err := router.NewEngine(router.EngineConfig{
		ServiceName: "shop-integration",
		HTTP: config.HTTPConfig{
			MaxBodySize:   1 << 20,
			MaxUploadSize: 3 << 20,
		},
		HealthChecks: map[string]handler.Pinger{
			"database": handler.PingFunc(func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			}),
		},
	}, router.Handlers{
		Category: handler.NewCategoryHandler(catalogapp.NewCategoryService(categoryRepo, productRepo)),
		Product:  handler.NewProductHandler(productService),
		Supplier: handler.NewSupplierHandler(partnerapp.NewSupplierService(supplierRepo, purchaseRepo), settlementService),
		Customer: handler.NewCustomerHandler(partnerapp.NewCustomerService(persistence.NewGormCustomerDirectory(db), orderRepo), settlementService),
		Order:    handler.NewOrderHandler(orderService),
		Purchase: handler.NewPurchaseHandler(purchaseService),
		Report:   handler.NewReportHandler(reportService),
	})
	require.NoError(t, err)

	return &TestServer{
		DB:     db,
		API:    testutil.NewAPIClient(t, engine),
		Events: recorder,
		Stores: stores,
	}
}

var allEventTypes = []string{
	"ProductCreated", "ProductStockChanged", "ProductDeleted",
	"OrderPlaced", "PurchaseRecorded", "DueSettled",
}

// Fixtures

func (s *TestServer) createCategory(t *testing.T, name string) catalogapp.CategoryResponse {
	t.Helper()
	w := s.API.Do(http.MethodPost, "/api/v1/categories", map[string]any{"name": name})
	return testutil.RequireData[catalogapp.CategoryResponse](t, w, http.StatusCreated)
}

func (s *TestServer) createProduct(t *testing.T, categoryID uuid.UUID, code, price, buying string, stock int) catalogapp.ProductResponse {
	t.Helper()
	w := s.API.Do(http.MethodPost, "/api/v1/products", map[string]any{
		"category_id":  categoryID,
		"product_name": "Product " + code,
		"product_code": code,
		"price":        price,
		"buying_price": buying,
		"stock_amount": stock,
	})
	return testutil.RequireData[catalogapp.ProductResponse](t, w, http.StatusCreated)
}

func (s *TestServer) createSupplier(t *testing.T, name string) partnerapp.SupplierResponse {
	t.Helper()
	w := s.API.Do(http.MethodPost, "/api/v1/suppliers", map[string]any{
		"name":  name,
		"email": fmt.Sprintf("%s@suppliers.test", uuid.NewString()[:8]),
	})
	return testutil.RequireData[partnerapp.SupplierResponse](t, w, http.StatusCreated)
}

type line struct {
	product uuid.UUID
	qty     int
}

func (s *TestServer) placeOrder(t *testing.T, customerNumber int, paid string, lines ...line) tradeapp.OrderResponse {
	t.Helper()
	items := make([]map[string]any, len(lines))
	for i, l := range lines {
		items[i] = map[string]any{"product_id": l.product, "quantity": l.qty}
	}
	body := map[string]any{
		"customer_name":  "Walk-in",
		"customer_phone": "555-0100",
		"items":          items,
		"paid_amount":    paid,
	}
	if customerNumber > 0 {
		body["customer_number"] = customerNumber
	}
	w := s.API.Do(http.MethodPost, "/api/v1/orders", body)
	return testutil.RequireData[tradeapp.OrderResponse](t, w, http.StatusCreated)
}
