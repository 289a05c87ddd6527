package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOrderRepository_SQLite(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	first := seedOrder(t, db, 42, "100", "30", day0)
	seedOrder(t, db, 42, "60", "60", day0.Add(time.Hour))
	seedOrder(t, db, 7, "20", "0", day0.Add(2*time.Hour))

	t.Run("find by id loads items", func(t *testing.T) {
		order, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "70.00", order.DueAmount.StringFixed(2))
		assert.Equal(t, first.Items[0].ID, order.Items[0].ID)

		_, err = repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("customer orders oldest first", func(t *testing.T) {
		orders, err := repo.FindByCustomer(ctx, 42)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, first.ID, orders[0].ID)
		assert.Len(t, orders[1].Items, 1)
	})

	t.Run("customer due", func(t *testing.T) {
		due, err := repo.CustomerDue(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "70.00", due.StringFixed(2))

		due, err = repo.CustomerDue(ctx, 1000)
		require.NoError(t, err)
		assert.True(t, due.IsZero())
	})

	t.Run("filter by due", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["has_due"] = true
		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		orders, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}

func TestGormCustomerDirectory_SQLite(t *testing.T) {
	db := newSQLiteDB(t)
	dir := NewGormCustomerDirectory(db)
	ctx := context.Background()

	next, err := dir.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	seedOrder(t, db, 42, "100", "30", day0)
	latest := seedOrder(t, db, 42, "60", "0", day0.Add(time.Hour))

	next, err = dir.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 43, next)

	t.Run("find by number", func(t *testing.T) {
		c, err := dir.FindByNumber(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(2), c.OrderCount)
		assert.Equal(t, "130.00", c.TotalDue.StringFixed(2))
		assert.True(t, latest.CreatedAt.Equal(c.LastOrderAt))
	})

	t.Run("find by phone", func(t *testing.T) {
		c, err := dir.FindByPhone(ctx, "0170000000")
		require.NoError(t, err)
		assert.Equal(t, 42, c.CustomerNumber)

		_, err = dir.FindByPhone(ctx, "0999")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = dir.FindByPhone(ctx, "")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestGormCustomerDirectory_WithDue(t *testing.T) {
	db, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()

	mock.ExpectQuery(`(?s)SELECT customer_number,.* FROM "orders" GROUP BY "customer_number" HAVING SUM\(due_amount\) > 0 ORDER BY total_due DESC, customer_number ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"customer_number", "customer_name", "customer_phone", "customer_address", "order_count", "total_due", "last_order_at"}).
			AddRow(42, "Rahim", "0170000000", "Dhaka", 3, "150.00", day0))

	customers, err := NewGormCustomerDirectory(db).WithDue(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, 42, customers[0].CustomerNumber)
	assert.Equal(t, "150.00", customers[0].TotalDue.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCustomerDirectory_List(t *testing.T) {
	db, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT\("customer_number"\)\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`(?s)SELECT customer_number,.* FROM "orders" GROUP BY "customer_number" ORDER BY total_due DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"customer_number", "customer_name", "order_count", "total_due", "last_order_at"}).
			AddRow(42, "Rahim", 3, "150.00", day0).
			AddRow(7, "Karim", 1, "0.00", day0))

	filter := shared.Filter{Page: 1, PageSize: 10, OrderBy: "total_due", OrderDir: "desc"}
	customers, total, err := NewGormCustomerDirectory(db).List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, customers, 2)
	assert.Equal(t, "Karim", customers[1].CustomerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPurchaseRepository_SQLite(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormPurchaseRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "SUGAR-1", 0)
	acme := seedSupplier(t, db, "acme")
	other := seedSupplier(t, db, "other")
	first := seedPurchase(t, db, product.ID, acme.ID, 10, "2.00", "5.00", day0)
	seedPurchase(t, db, product.ID, acme.ID, 1, "2.00", "2.00", day0.Add(time.Hour))
	seedPurchase(t, db, product.ID, other.ID, 3, "1.00", "0", day0.Add(2*time.Hour))

	t.Run("by supplier with names", func(t *testing.T) {
		views, err := repo.FindBySupplier(ctx, acme.ID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, first.ID, views[0].ID)
		assert.Equal(t, "Product SUGAR-1", views[0].ProductName)
		assert.Equal(t, "acme", views[0].SupplierName)
		assert.Equal(t, 10, views[0].Quantity)
		assert.Equal(t, "15.00", views[0].DueBillAmount.StringFixed(2))
	})

	t.Run("list with due filter", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["has_due"] = true
		views, total, err := repo.List(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, views, 2)
	})

	t.Run("find by id", func(t *testing.T) {
		p, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, p.Quantity)

		_, err = repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
