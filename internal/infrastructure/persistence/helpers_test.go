package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGorm opens a postgres-dialect GORM handle backed by sqlmock
func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

// newSQLiteDB opens a migrated in-memory database
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewSQLiteDatabase("file::memory:", nil)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return db.DB
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedProduct(t *testing.T, db *gorm.DB, code string, stock int) *catalog.Product {
	t.Helper()
	category, err := catalog.NewCategory("Groceries " + code)
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)

	product, err := catalog.NewProduct(catalog.ProductDetails{
		CategoryID:  category.ID,
		Name:        "Product " + code,
		Code:        code,
		Price:       dec("12.50"),
		BuyingPrice: dec("9.00"),
		StockAmount: stock,
	})
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier(partner.SupplierDetails{Name: name, Email: name + "@example.com"})
	require.NoError(t, err)
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}

// seedOrder inserts an order for a customer with one line priced at total
// and the given payment, created at the given time.
func seedOrder(t *testing.T, db *gorm.DB, customer int, total, paid string, createdAt time.Time) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder(
		trade.CustomerInfo{Number: customer, Name: "Customer", Phone: "0170000000"},
		[]trade.OrderLine{{ProductID: uuid.New(), Quantity: 1, Price: dec(total), BuyingPrice: dec(total).Div(decimal.NewFromInt(2))}},
		dec(paid),
	)
	require.NoError(t, err)
	order.CreatedAt = createdAt
	order.UpdatedAt = createdAt
	for i := range order.Items {
		order.Items[i].CreatedAt = createdAt
		order.Items[i].UpdatedAt = createdAt
	}
	require.NoError(t, NewGormOrderRepository(db).Create(context.Background(), order))
	return order
}

func seedPurchase(t *testing.T, db *gorm.DB, productID, supplierID uuid.UUID, qty int, price, payment string, createdAt time.Time) *trade.Purchase {
	t.Helper()
	purchase, err := trade.NewPurchase(trade.PurchaseDetails{
		ProductID:     productID,
		SupplierID:    supplierID,
		Quantity:      qty,
		PurchasePrice: dec(price),
		Payment:       dec(payment),
		PurchaseDate:  createdAt,
	})
	require.NoError(t, err)
	purchase.CreatedAt = createdAt
	purchase.UpdatedAt = createdAt
	require.NoError(t, NewGormPurchaseRepository(db).Create(context.Background(), purchase))
	return purchase
}
