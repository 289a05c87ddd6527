package persistence

import (
	"context"
	"time"

	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/report"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReportRepository implements report.Repository. It only loads rows and
// computes counts; windowed sums are done by the report aggregator.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// SalesRecords loads the orders created within [from, to]; nil bounds are open
func (r *GormReportRepository) SalesRecords(ctx context.Context, from, to *time.Time) ([]report.SalesRecord, error) {
	query := r.db.WithContext(ctx).Model(&trade.Order{}).
		Select("id, customer_name, customer_number, total_price, total_buying_price, created_at")
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var records []report.SalesRecord
	if err := query.Order("created_at ASC, id ASC").Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CatalogCounts counts products and the distinct categories they use
func (r *GormReportRepository) CatalogCounts(ctx context.Context) (report.CatalogCounts, error) {
	var counts struct {
		Products   int64
		Categories int64
	}
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Select("COUNT(id) AS products, COUNT(DISTINCT category_id) AS categories").
		Scan(&counts).Error
	return report.CatalogCounts{Products: counts.Products, Categories: counts.Categories}, err
}

// CustomerCount counts distinct customer numbers across orders
func (r *GormReportRepository) CustomerCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&trade.Order{}).Distinct("customer_number").Count(&count).Error
	return count, err
}

// TotalDue sums what all customers still owe
func (r *GormReportRepository) TotalDue(ctx context.Context) (decimal.Decimal, error) {
	return sumDecimal(r.db.WithContext(ctx).Model(&trade.Order{}), "due_amount")
}

// Inventory lists products with their category name, "N/A" when uncategorized
func (r *GormReportRepository) Inventory(ctx context.Context, filter shared.Filter) ([]report.InventoryItem, int64, error) {
	base := r.db.WithContext(ctx).Table("products").
		Joins("LEFT JOIN categories ON categories.id = products.category_id")
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		base = base.Where("(LOWER(products.product_name) LIKE ? ESCAPE '\\' OR LOWER(products.product_code) LIKE ? ESCAPE '\\')", pattern, pattern)
	}
	if v, ok := filter.Filters["low_stock"]; ok {
		base = base.Where("products.stock_amount <= ?", v)
	}
	if v, ok := filter.Filters["category_id"]; ok {
		base = base.Where("products.category_id = ?", v)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []report.InventoryItem
	query := base.Session(&gorm.Session{}).Select(`products.id AS product_id,
		products.product_name,
		products.product_code,
		COALESCE(categories.name, 'N/A') AS category_name,
		products.price,
		products.buying_price,
		products.stock_amount,
		products.status`)
	query = paginate(orderBy(query, filter, ProductSortFields, "product_name", "products."), filter)
	if err := query.Scan(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

var _ report.Repository = (*GormReportRepository)(nil)
