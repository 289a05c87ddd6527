package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAll lists suppliers, searching name and email
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	var suppliers []partner.Supplier
	query := r.filtered(r.db.WithContext(ctx).Model(&partner.Supplier{}), filter)
	query = paginate(orderBy(query, filter, SupplierSortFields, "name", ""), filter)
	if err := query.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Count counts suppliers matching the filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(r.db.WithContext(ctx).Model(&partner.Supplier{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete removes a supplier that has no purchases on record
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var purchases int64
	if err := r.db.WithContext(ctx).Model(&trade.Purchase{}).Where("supplier_id = ?", id).Count(&purchases).Error; err != nil {
		return err
	}
	if purchases > 0 {
		return shared.ErrInvalidState.WithMessage("Supplier has purchases on record")
	}

	result := r.db.WithContext(ctx).Delete(&partner.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByEmail checks whether an email is taken, ignoring excludeID when set
func (r *GormSupplierRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&partner.Supplier{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

type supplierSummaryRow struct {
	TotalPurchases   int64
	TotalQuantity    int64
	TotalPrice       decimal.Decimal
	TotalBuyingPrice decimal.Decimal
	TotalDue         decimal.Decimal
	TotalPaid        decimal.Decimal
}

// Summary aggregates the purchase history of a supplier. A supplier without
// purchases gets a summary of zeros.
func (r *GormSupplierRepository) Summary(ctx context.Context, id uuid.UUID) (*partner.SupplierSummary, error) {
	supplier, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var row supplierSummaryRow
	if err := r.db.WithContext(ctx).Model(&trade.Purchase{}).
		Select(`COUNT(id) AS total_purchases,
			COALESCE(SUM(purchase_quantity), 0) AS total_quantity,
			COALESCE(SUM(total_amount), 0) AS total_price,
			COALESCE(SUM(purchase_price), 0) AS total_buying_price,
			COALESCE(SUM(due_bill_amount), 0) AS total_due,
			COALESCE(SUM(payment_bill_amount), 0) AS total_paid`).
		Where("supplier_id = ?", id).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &partner.SupplierSummary{
		SupplierID:       supplier.ID,
		Name:             supplier.Name,
		Email:            supplier.EmailAddress(),
		Phone:            supplier.Phone,
		Address:          supplier.Address,
		TotalPurchases:   row.TotalPurchases,
		TotalQuantity:    row.TotalQuantity,
		TotalPrice:       row.TotalPrice.Round(2),
		TotalBuyingPrice: row.TotalBuyingPrice.Round(2),
		TotalDue:         row.TotalDue.Round(2),
		TotalPaid:        row.TotalPaid.Round(2),
	}, nil
}

// TotalDue sums the unpaid purchase bills of a supplier
func (r *GormSupplierRepository) TotalDue(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	return sumDecimal(r.db.WithContext(ctx).Model(&trade.Purchase{}).Where("supplier_id = ?", id), "due_bill_amount")
}

func (r *GormSupplierRepository) filtered(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\')", pattern, pattern)
	}
	return query
}

var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
