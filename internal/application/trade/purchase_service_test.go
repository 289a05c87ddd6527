package trade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
)

var purchaseNow = time.Date(2025, 4, 2, 17, 45, 0, 0, time.UTC)

type purchaseFixture struct {
	purchases  *MockPurchaseRepository
	products   *MockProductRepository
	categories *MockCategoryRepository
	suppliers  *MockSupplierRepository
	publisher  *MockEventPublisher
	service    *PurchaseService
}

func newPurchaseFixture() *purchaseFixture {
	f := &purchaseFixture{
		purchases:  new(MockPurchaseRepository),
		products:   new(MockProductRepository),
		categories: new(MockCategoryRepository),
		suppliers:  new(MockSupplierRepository),
		publisher:  new(MockEventPublisher),
	}
	scope := NewNoOpTransactionScope(f.products, new(MockOrderRepository), f.purchases, new(MockCustomerDirectory))
	f.service = NewPurchaseService(f.purchases, f.products, f.categories, f.suppliers, scope,
		shared.FixedClock(purchaseNow), zap.NewNop())
	f.service.SetEventPublisher(f.publisher)
	return f
}

func testSupplier(t *testing.T) *partner.Supplier {
	t.Helper()
	s, err := partner.NewSupplier(partner.SupplierDetails{Name: "Dhaka Traders", Phone: "01900000000"})
	require.NoError(t, err)
	return s
}

func TestPurchaseService_RecordPurchase(t *testing.T) {
	ctx := context.Background()
	f := newPurchaseFixture()
	supplier := testSupplier(t)
	product := stockedProduct(t, "Rice", "80.00", "65.00", 4)

	f.suppliers.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
	f.products.On("FindByIDForUpdate", mock.Anything, product.ID).Return(product, nil)
	f.purchases.On("Create", mock.Anything, mock.AnythingOfType("*trade.Purchase")).Return(nil)
	f.products.On("Save", mock.Anything, product).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.RecordPurchase(ctx, RecordPurchaseRequest{
		ProductID:     product.ID,
		SupplierID:    supplier.ID,
		Quantity:      10,
		PurchasePrice: dec("62.50"),
		PurchaseDate:  "2025-03-30",
		Payment:       dec("500"),
	})

	require.NoError(t, err)
	assert.Equal(t, "625.00", resp.TotalAmount.StringFixed(2))
	assert.Equal(t, "125.00", resp.DueBillAmount.StringFixed(2))
	assert.Equal(t, "2025-03-30", resp.PurchaseDate)
	assert.Equal(t, 14, product.StockAmount)

	f.purchases.AssertExpectations(t)
	f.products.AssertExpectations(t)
	f.publisher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(events []shared.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == trade.EventTypePurchaseRecorded
	}))
	f.publisher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(events []shared.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == catalog.EventTypeProductStockChanged
	}))
}

func TestPurchaseService_RecordPurchase_DefaultsDateToToday(t *testing.T) {
	ctx := context.Background()
	f := newPurchaseFixture()
	supplier := testSupplier(t)
	product := stockedProduct(t, "Rice", "80.00", "65.00", 0)

	f.suppliers.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
	f.products.On("FindByIDForUpdate", mock.Anything, product.ID).Return(product, nil)
	f.purchases.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.products.On("Save", mock.Anything, product).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.RecordPurchase(ctx, RecordPurchaseRequest{
		ProductID:     product.ID,
		SupplierID:    supplier.ID,
		Quantity:      1,
		PurchasePrice: dec("1.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-04-02", resp.PurchaseDate)
	assert.True(t, resp.PaymentBillAmount.IsZero())
	assert.Equal(t, "1.00", resp.DueBillAmount.StringFixed(2))
}

func TestPurchaseService_RecordPurchase_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown supplier", func(t *testing.T) {
		f := newPurchaseFixture()
		id := uuid.New()
		f.suppliers.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := f.service.RecordPurchase(ctx, RecordPurchaseRequest{
			ProductID: uuid.New(), SupplierID: id, Quantity: 1, PurchasePrice: dec("1"), PurchaseDate: "2025-01-01",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.products.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newPurchaseFixture()
		_, err := f.service.RecordPurchase(ctx, RecordPurchaseRequest{
			ProductID: uuid.New(), SupplierID: uuid.New(), Quantity: 1, PurchasePrice: dec("1"), PurchaseDate: "02/04/2025",
		})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("payment above total leaves stock untouched", func(t *testing.T) {
		f := newPurchaseFixture()
		supplier := testSupplier(t)
		product := stockedProduct(t, "Rice", "80.00", "65.00", 4)
		f.suppliers.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		f.products.On("FindByIDForUpdate", mock.Anything, product.ID).Return(product, nil)

		_, err := f.service.RecordPurchase(ctx, RecordPurchaseRequest{
			ProductID: product.ID, SupplierID: supplier.ID, Quantity: 2, PurchasePrice: dec("10"),
			PurchaseDate: "2025-01-01", Payment: dec("20.01"),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PAYMENT_EXCEEDS_TOTAL", domainErr.Code)
		assert.Equal(t, 4, product.StockAmount)
		f.purchases.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("stock save failure", func(t *testing.T) {
		f := newPurchaseFixture()
		supplier := testSupplier(t)
		product := stockedProduct(t, "Rice", "80.00", "65.00", 4)
		f.suppliers.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		f.products.On("FindByIDForUpdate", mock.Anything, product.ID).Return(product, nil)
		f.purchases.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.products.On("Save", mock.Anything, product).Return(errors.New("deadlock detected"))

		_, err := f.service.RecordPurchase(ctx, RecordPurchaseRequest{
			ProductID: product.ID, SupplierID: supplier.ID, Quantity: 2, PurchasePrice: dec("10"),
			PurchaseDate: "2025-01-01",
		})
		assert.EqualError(t, err, "deadlock detected")
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestPurchaseService_FormOptions(t *testing.T) {
	ctx := context.Background()
	f := newPurchaseFixture()

	grocery, err := catalog.NewCategory("Grocery")
	require.NoError(t, err)
	rice := stockedProduct(t, "Rice", "80.00", "65.00", 4)
	rice.CategoryID = grocery.ID
	orphan := stockedProduct(t, "Soap", "30.00", "20.00", 4)
	supplier := testSupplier(t)

	f.categories.On("FindAll", ctx, mock.Anything).Return([]catalog.Category{*grocery}, nil)
	f.products.On("FindAll", ctx, mock.Anything).Return([]catalog.Product{*rice, *orphan}, nil)
	f.suppliers.On("FindAll", ctx, mock.Anything).Return([]partner.Supplier{*supplier}, nil)

	options, err := f.service.FormOptions(ctx)

	require.NoError(t, err)
	require.Len(t, options.Products, 2)
	assert.Equal(t, "Grocery", options.Products[0].CategoryName)
	assert.Equal(t, "N/A", options.Products[1].CategoryName)
	require.Len(t, options.Suppliers, 1)
	assert.Equal(t, "Dhaka Traders", options.Suppliers[0].Name)
}

func TestPurchaseService_ProductPurchaseInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("with category", func(t *testing.T) {
		f := newPurchaseFixture()
		grocery, err := catalog.NewCategory("Grocery")
		require.NoError(t, err)
		rice := stockedProduct(t, "Rice", "80.00", "65.00", 4)
		rice.CategoryID = grocery.ID

		f.products.On("FindByID", ctx, rice.ID).Return(rice, nil)
		f.categories.On("FindByID", ctx, grocery.ID).Return(grocery, nil)

		info, err := f.service.ProductPurchaseInfo(ctx, rice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Grocery", info.CategoryName)
		assert.Equal(t, "65.00", info.BuyingPrice.StringFixed(2))
		assert.Equal(t, 4, info.StockAmount)
	})

	t.Run("category gone", func(t *testing.T) {
		f := newPurchaseFixture()
		rice := stockedProduct(t, "Rice", "80.00", "65.00", 4)
		f.products.On("FindByID", ctx, rice.ID).Return(rice, nil)
		f.categories.On("FindByID", ctx, rice.CategoryID).Return(nil, shared.ErrNotFound)

		info, err := f.service.ProductPurchaseInfo(ctx, rice.ID)
		require.NoError(t, err)
		assert.Equal(t, "N/A", info.CategoryName)
	})
}

func TestPurchaseService_List(t *testing.T) {
	ctx := context.Background()
	f := newPurchaseFixture()
	supplierID := uuid.New()

	expected := shared.Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "purchase_date",
		OrderDir: "asc",
		Filters:  map[string]interface{}{"supplier_id": supplierID},
	}
	f.purchases.On("List", ctx, expected).Return([]trade.PurchaseView(nil), int64(0), nil)

	views, total, err := f.service.List(ctx, PurchaseListFilter{
		SupplierID: &supplierID,
		Page:       1,
		PageSize:   20,
		SortBy:     "purchase_date",
	})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestPurchaseService_RecordPurchase_RepositoriesSeeCallerContext(t *testing.T) {
	ctx, fromCaller := callerContext()
	f := newPurchaseFixture()
	supplier := testSupplier(t)
	product := stockedProduct(t, "Lentils", "120.00", "95.00", 0)

	f.suppliers.On("FindByID", fromCaller, supplier.ID).Return(supplier, nil)
	f.products.On("FindByIDForUpdate", fromCaller, product.ID).Return(product, nil)
	f.purchases.On("Create", fromCaller, mock.AnythingOfType("*trade.Purchase")).Return(nil)
	f.products.On("Save", fromCaller, product).Return(nil)
	f.publisher.On("Publish", fromCaller, mock.Anything).Return(nil)

	_, err := f.service.RecordPurchase(ctx, RecordPurchaseRequest{
		ProductID:     product.ID,
		SupplierID:    supplier.ID,
		Quantity:      5,
		PurchasePrice: dec("95.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, 5, product.StockAmount)
	f.suppliers.AssertExpectations(t)
	f.products.AssertExpectations(t)
	f.purchases.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}
