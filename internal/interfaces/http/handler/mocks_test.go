package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	partnerapp "github.com/shopledger/backend/internal/application/partner"
	reportapp "github.com/shopledger/backend/internal/application/report"
	settlementapp "github.com/shopledger/backend/internal/application/settlement"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/report"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/internal/interfaces/http/dto"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testEnvelope mirrors dto.Response with raw data for per-test decoding
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	return router
}

func performRequest(router http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData(t *testing.T, env testEnvelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

// MockCategoryService implements CategoryService for testing
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, req catalogapp.CreateCategoryRequest) (*catalogapp.CategoryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.CategoryResponse), args.Error(1)
}

func (m *MockCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*catalogapp.CategoryResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.CategoryResponse), args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context, filter catalogapp.CategoryListFilter) ([]catalogapp.CategoryResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalogapp.CategoryResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryService) Update(ctx context.Context, id uuid.UUID, req catalogapp.UpdateCategoryRequest) (*catalogapp.CategoryResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.CategoryResponse), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryService) Products(ctx context.Context, id uuid.UUID) ([]catalogapp.ProductResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalogapp.ProductResponse), args.Error(1)
}

// MockProductService implements ProductService for testing
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, req catalogapp.ProductRequest, image *catalogapp.ImageUpload) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uuid.UUID) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, filter catalogapp.ProductListFilter) ([]catalogapp.ProductResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalogapp.ProductResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) Update(ctx context.Context, id uuid.UUID, req catalogapp.ProductRequest, image *catalogapp.ImageUpload) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, id, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductService) AddStock(ctx context.Context, id uuid.UUID, req catalogapp.AddStockRequest) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

func (m *MockProductService) ImageURL(ctx context.Context, id uuid.UUID) (*catalogapp.ImageURLResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ImageURLResponse), args.Error(1)
}

// MockSupplierService implements SupplierService for testing
type MockSupplierService struct {
	mock.Mock
}

func (m *MockSupplierService) Create(ctx context.Context, req partnerapp.SupplierRequest) (*partnerapp.SupplierResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.SupplierResponse), args.Error(1)
}

func (m *MockSupplierService) GetByID(ctx context.Context, id uuid.UUID) (*partnerapp.SupplierResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.SupplierResponse), args.Error(1)
}

func (m *MockSupplierService) List(ctx context.Context, filter partnerapp.SupplierListFilter) ([]partnerapp.SupplierResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partnerapp.SupplierResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockSupplierService) Update(ctx context.Context, id uuid.UUID, req partnerapp.SupplierRequest) (*partnerapp.SupplierResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.SupplierResponse), args.Error(1)
}

func (m *MockSupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSupplierService) Summary(ctx context.Context, id uuid.UUID) (*partner.SupplierSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.SupplierSummary), args.Error(1)
}

func (m *MockSupplierService) Purchases(ctx context.Context, id uuid.UUID) ([]trade.PurchaseView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.PurchaseView), args.Error(1)
}

func (m *MockSupplierService) Due(ctx context.Context, id uuid.UUID) (*partnerapp.DueResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.DueResponse), args.Error(1)
}

// MockCustomerService implements CustomerService for testing
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) List(ctx context.Context, filter partnerapp.CustomerListFilter) ([]partner.Customer, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerService) WithDue(ctx context.Context) ([]partner.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerService) Due(ctx context.Context, number int) (*partnerapp.DueResponse, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.DueResponse), args.Error(1)
}

func (m *MockCustomerService) Details(ctx context.Context, lookup partnerapp.CustomerLookup) (*partnerapp.CustomerDetailsResponse, error) {
	args := m.Called(ctx, lookup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.CustomerDetailsResponse), args.Error(1)
}

// MockSettlementService implements CustomerSettler and SupplierSettler for testing
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) PayCustomerDue(ctx context.Context, customerNumber int, req settlementapp.SettleDueRequest, idempotencyKey string) (*settlementapp.CustomerPaymentResponse, error) {
	args := m.Called(ctx, customerNumber, req, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlementapp.CustomerPaymentResponse), args.Error(1)
}

func (m *MockSettlementService) AdjustSupplierDue(ctx context.Context, supplierID uuid.UUID, req settlementapp.SettleDueRequest, idempotencyKey string) (*settlementapp.SupplierAdjustmentResponse, error) {
	args := m.Called(ctx, supplierID, req, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlementapp.SupplierAdjustmentResponse), args.Error(1)
}

// MockOrderService implements OrderService for testing
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, req tradeapp.PlaceOrderRequest) (*tradeapp.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tradeapp.OrderResponse), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (*tradeapp.OrderResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tradeapp.OrderResponse), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, filter tradeapp.OrderListFilter) ([]tradeapp.OrderResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]tradeapp.OrderResponse), args.Get(1).(int64), args.Error(2)
}

// MockPurchaseService implements PurchaseService for testing
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) RecordPurchase(ctx context.Context, req tradeapp.RecordPurchaseRequest) (*tradeapp.PurchaseResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tradeapp.PurchaseResponse), args.Error(1)
}

func (m *MockPurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*tradeapp.PurchaseResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tradeapp.PurchaseResponse), args.Error(1)
}

func (m *MockPurchaseService) List(ctx context.Context, filter tradeapp.PurchaseListFilter) ([]trade.PurchaseView, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.PurchaseView), args.Get(1).(int64), args.Error(2)
}

func (m *MockPurchaseService) FormOptions(ctx context.Context) (*tradeapp.PurchaseFormOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tradeapp.PurchaseFormOptions), args.Error(1)
}

func (m *MockPurchaseService) ProductPurchaseInfo(ctx context.Context, productID uuid.UUID) (*tradeapp.ProductPurchaseInfo, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tradeapp.ProductPurchaseInfo), args.Error(1)
}

// MockReportService implements ReportService for testing
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Overview(ctx context.Context) (*report.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Overview), args.Error(1)
}

func (m *MockReportService) ProfitByRange(ctx context.Context, filter reportapp.ProfitRangeFilter) (*report.ProfitStatement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ProfitStatement), args.Error(1)
}

func (m *MockReportService) ProfitWindow(ctx context.Context, filter reportapp.ProfitWindowFilter) (*report.ProfitStatement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ProfitStatement), args.Error(1)
}

func (m *MockReportService) Inventory(ctx context.Context, filter reportapp.InventoryFilter) ([]report.InventoryItem, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]report.InventoryItem), args.Get(1).(int64), args.Error(2)
}
