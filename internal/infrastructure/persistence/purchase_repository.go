package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"gorm.io/gorm"
)

const purchaseViewColumns = `purchases.id,
	purchases.product_id,
	COALESCE(products.product_name, '') AS product_name,
	purchases.supplier_id,
	COALESCE(suppliers.name, '') AS supplier_name,
	purchases.purchase_quantity AS quantity,
	purchases.purchase_price,
	purchases.total_amount,
	purchases.payment_bill_amount,
	purchases.due_bill_amount,
	purchases.purchase_date,
	purchases.created_at`

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase by its ID
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Purchase, error) {
	var purchase trade.Purchase
	if err := r.db.WithContext(ctx).First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// Create inserts a purchase
func (r *GormPurchaseRepository) Create(ctx context.Context, purchase *trade.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

// List returns purchases joined with product and supplier names
func (r *GormPurchaseRepository) List(ctx context.Context, filter shared.Filter) ([]trade.PurchaseView, int64, error) {
	base := r.filtered(r.joined(ctx), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var views []trade.PurchaseView
	query := base.Session(&gorm.Session{}).Select(purchaseViewColumns)
	query = paginate(orderBy(query, filter, PurchaseSortFields, "created_at", "purchases."), filter)
	if err := query.Scan(&views).Error; err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// FindBySupplier lists a supplier's purchases oldest first
func (r *GormPurchaseRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]trade.PurchaseView, error) {
	var views []trade.PurchaseView
	if err := r.joined(ctx).
		Select(purchaseViewColumns).
		Where("purchases.supplier_id = ?", supplierID).
		Order("purchases.created_at ASC, purchases.id ASC").
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *GormPurchaseRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("purchases").
		Joins("LEFT JOIN products ON products.id = purchases.product_id").
		Joins("LEFT JOIN suppliers ON suppliers.id = purchases.supplier_id")
}

func (r *GormPurchaseRepository) filtered(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(products.product_name) LIKE ? ESCAPE '\\' OR LOWER(suppliers.name) LIKE ? ESCAPE '\\')", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "supplier_id":
			query = query.Where("purchases.supplier_id = ?", value)
		case "product_id":
			query = query.Where("purchases.product_id = ?", value)
		case "has_due":
			if value == true {
				query = query.Where("purchases.due_bill_amount > 0")
			}
		}
	}
	return query
}

var _ trade.PurchaseRepository = (*GormPurchaseRepository)(nil)
