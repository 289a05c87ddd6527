package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Overview is the dashboard summary combining catalog counts, outstanding
// dues and sales/profit over the standard windows.
type Overview struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	TotalProducts   int64           `json:"total_products"`
	TotalCategories int64           `json:"total_categories"`
	TotalCustomers  int64           `json:"total_customers"`
	TotalDueAmount  decimal.Decimal `json:"total_due_amount"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	Sales           []WindowTotals  `json:"sales"`
	HourlyProfit    []WindowTotals  `json:"hourly_profit"`
}

// ProfitLine is a single order with its derived profit
type ProfitLine struct {
	SalesRecord
	Profit decimal.Decimal `json:"profit"`
}

// NewProfitLine derives the profit of a record
func NewProfitLine(r SalesRecord) ProfitLine {
	return ProfitLine{SalesRecord: r, Profit: r.Profit()}
}

// ProfitStatement lists the orders of one window with their totals
type ProfitStatement struct {
	Window           string          `json:"window"`
	From             *time.Time      `json:"from,omitempty"`
	To               *time.Time      `json:"to,omitempty"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalBuyingPrice decimal.Decimal `json:"total_buying_price"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	OrderCount       int             `json:"order_count"`
	Orders           []ProfitLine    `json:"orders"`
}

// InventoryItem is a product row of the inventory listing
type InventoryItem struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductCode  string          `json:"product_code"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	StockAmount  int             `json:"stock_amount"`
	Status       string          `json:"status"`
}

// CatalogCounts are distinct counts over the product table
type CatalogCounts struct {
	Products   int64
	Categories int64
}

// Repository provides the read side of the reports
type Repository interface {
	// SalesRecords loads orders created within [from, to]; nil bounds are open
	SalesRecords(ctx context.Context, from, to *time.Time) ([]SalesRecord, error)
	CatalogCounts(ctx context.Context) (CatalogCounts, error)
	CustomerCount(ctx context.Context) (int64, error)
	TotalDue(ctx context.Context) (decimal.Decimal, error)
	Inventory(ctx context.Context, filter shared.Filter) ([]InventoryItem, int64, error)
}

// Cache stores serialized report payloads. InvalidateAll drops every entry
// at once because any sale, purchase or settlement can move every figure.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	InvalidateAll(ctx context.Context) error
}
