package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID loads an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll lists orders without their items
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	var orders []trade.Order
	query := r.filtered(r.db.WithContext(ctx).Model(&trade.Order{}), filter)
	query = paginate(orderBy(query, filter, OrderSortFields, "created_at", ""), filter)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(r.db.WithContext(ctx).Model(&trade.Order{}), filter).Count(&count).Error
	return count, err
}

// Create inserts the order and its items
func (r *GormOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByCustomer lists a customer's orders oldest first, with items
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerNumber int) ([]trade.Order, error) {
	var orders []trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_number = ?", customerNumber).
		Order("created_at ASC, id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CustomerDue sums what a customer still owes across all orders
func (r *GormOrderRepository) CustomerDue(ctx context.Context, customerNumber int) (decimal.Decimal, error) {
	return sumDecimal(r.db.WithContext(ctx).Model(&trade.Order{}).Where("customer_number = ?", customerNumber), "due_amount")
}

func (r *GormOrderRepository) filtered(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(customer_name) LIKE ? ESCAPE '\\' OR customer_phone LIKE ? ESCAPE '\\')", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "customer_number":
			query = query.Where("customer_number = ?", value)
		case "has_due":
			if value == true {
				query = query.Where("due_amount > 0")
			} else {
				query = query.Where("due_amount = 0")
			}
		}
	}
	return query
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
